package novelhost

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/nets"
	"github.com/reusee/novel/novelconfigs"
	"github.com/reusee/novel/novelvm"
	"github.com/reusee/novel/syncs"
)

type Module struct {
	dscope.Module
	VM      novelvm.Module
	Configs novelconfigs.Module
	Nets    nets.Module
}

type NewScheduler func(engine *novelvm.Engine) *Scheduler

func (Module) NewScheduler(
	stepsPerTick novelconfigs.StepsPerTick,
	tickInterval novelconfigs.TickInterval,
) NewScheduler {
	return func(engine *novelvm.Engine) *Scheduler {
		return &Scheduler{
			Engine:       engine,
			StepsPerTick: int(stepsPerTick),
			TickInterval: time.Duration(tickInterval),
		}
	}
}

func (Module) Server(
	logger logs.Logger,
	newEngine novelvm.NewEngineFunc,
	newSpan logs.NewSpan,
	isLocalAddr nets.IsLocalAddr,
	allowRemote novelconfigs.AllowRemote,
	maxSessions novelconfigs.MaxSessions,
	stepsPerTick novelconfigs.StepsPerTick,
	tickInterval novelconfigs.TickInterval,
) *Server {
	return &Server{
		Logger:       logger,
		NewEngine:    newEngine,
		NewSpan:      newSpan,
		IsLocalAddr:  isLocalAddr,
		AllowRemote:  bool(allowRemote),
		Sessions:     syncs.NewSemaphore(int(maxSessions)),
		StepsPerTick: int(stepsPerTick),
		TickInterval: time.Duration(tickInterval),
	}
}
