package logs

import (
	"io"
	"os"
)

// Writer is where terminal logs go. The console host owns stdout, so logs use stderr.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
