package novelvm

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

var traceConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (e *Engine) WriteTrace(w io.Writer) {
	fmt.Fprintf(w, "state: %s\n", e.state)
	fmt.Fprintf(w, "pc: %d (%s)\n", e.pc, e.program.At(e.pc))
	fmt.Fprintf(w, "pointer: %d\n", e.tape.Pointer())
	fmt.Fprintln(w, "tape trace:")
	for i := range 64 {
		if i > 0 && i%16 == 0 {
			fmt.Fprintln(w, "")
		}
		v, _ := e.tape.Get(i)
		fmt.Fprintf(w, "%06x ", v)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "snapshot:")
	snapshot := e.Snapshot()
	snapshot.Output = ""
	traceConfig.Fdump(w, snapshot)
}
