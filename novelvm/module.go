package novelvm

import (
	"github.com/reusee/dscope"
	"github.com/reusee/novel/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewEngineFunc func() *Engine

func (Module) NewEngine(
	logger logs.Logger,
) NewEngineFunc {
	return func() *Engine {
		return NewEngine(logger)
	}
}
