package configs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/novel/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
