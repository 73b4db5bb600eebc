package novelconfigs

import (
	"errors"
	"time"

	"github.com/reusee/novel/cmds"
	"github.com/reusee/novel/configs"
	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/vars"
)

const (
	DefaultStepsPerTick = 1000
	DefaultTickInterval = time.Millisecond * 16
	DefaultSavesDir     = "saves"
	DefaultListen       = "127.0.0.1:7890"
	DefaultMaxSessions  = 8
)

var (
	stepsPerTickFlag = cmds.Var[int]("-steps-per-tick", "steps drained in one scheduler tick")
	tickIntervalFlag = cmds.Var[string]("-tick-interval", "scheduler tick interval, like 16ms")
	savesDirFlag     = cmds.Var[string]("-saves-dir", "directory of saved programs")
	listenFlag       = cmds.Var[string]("-listen", "websocket listen address")
	maxSessionsFlag  = cmds.Var[int]("-max-sessions", "concurrent websocket sessions")
	allowRemoteFlag  = cmds.Switch("-allow-remote", "accept non-local websocket peers")
)

// StepsPerTick bounds how many steps the scheduler drains in one tick.
type StepsPerTick int

func (Module) StepsPerTick(
	loader configs.Loader,
	logger logs.Logger,
) StepsPerTick {
	return StepsPerTick(positive(logger, "steps per tick", vars.FirstNonZero(
		*stepsPerTickFlag,
		configs.First[int](loader, "steps_per_tick"),
	), DefaultStepsPerTick))
}

// positive replaces zero with def, and negative values with def after a warning.
// The cue schema already rejects them, flags do not.
func positive(logger logs.Logger, what string, n int, def int) int {
	if n < 0 {
		logger.Warn("non-positive value ignored", "what", what, "value", n, "default", def)
	}
	if n <= 0 {
		return def
	}
	return n
}

type TickInterval time.Duration

func (Module) TickInterval(
	loader configs.Loader,
	logger logs.Logger,
) TickInterval {
	for _, str := range []string{
		*tickIntervalFlag,
		configs.First[string](loader, "tick_interval"),
	} {
		if str == "" {
			continue
		}
		d, err := time.ParseDuration(str)
		if err != nil || d <= 0 {
			logger.Warn("bad tick interval", "value", str, "error", err)
			continue
		}
		return TickInterval(d)
	}
	return TickInterval(DefaultTickInterval)
}

// SavesDir is where saved programs live.
type SavesDir string

func (Module) SavesDir(
	loader configs.Loader,
	env Env,
) SavesDir {
	return SavesDir(vars.FirstNonZero(
		*savesDirFlag,
		env("NOVEL_SAVES_DIR"),
		configs.First[string](loader, "saves_dir"),
		DefaultSavesDir,
	))
}

type Listen string

func (Module) Listen(
	loader configs.Loader,
	env Env,
) Listen {
	return Listen(vars.FirstNonZero(
		*listenFlag,
		env("NOVEL_LISTEN"),
		configs.First[string](loader, "listen"),
		DefaultListen,
	))
}

type MaxSessions int

func (Module) MaxSessions(
	loader configs.Loader,
	logger logs.Logger,
) MaxSessions {
	return MaxSessions(positive(logger, "max sessions", vars.FirstNonZero(
		*maxSessionsFlag,
		configs.First[int](loader, "max_sessions"),
	), DefaultMaxSessions))
}

// AllowRemote lets the websocket host accept non-local peers.
type AllowRemote bool

func (Module) AllowRemote(
	loader configs.Loader,
	env Env,
) AllowRemote {
	if *allowRemoteFlag {
		return true
	}
	// first source that is set wins
	if str := env("NOVEL_ALLOW_REMOTE"); str != "" {
		return AllowRemote(vars.StrToBool(str))
	}
	var allow bool
	if err := loader.AssignFirst("allow_remote", &allow); err != nil {
		if errors.Is(err, configs.ErrValueNotFound) {
			return false
		}
		panic(err)
	}
	return AllowRemote(allow)
}
