package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/novel/debugs"
	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/novelhost"
	"github.com/reusee/novel/novelvm"
	"github.com/reusee/novel/saves"
)

var errNoSource = errors.New("no program: use -file <path> or -open <save name>")

func loadSource(store *saves.Store) (name string, lines []string, err error) {
	switch {

	case *sourceFile != "":
		content, err := os.ReadFile(*sourceFile)
		if err != nil {
			return "", nil, err
		}
		text := strings.TrimSuffix(string(content), "\n")
		return *sourceFile, strings.Split(text, "\n"), nil

	case *openName != "":
		name, err := store.Resolve(*openName)
		if err != nil {
			return "", nil, err
		}
		lines, err := store.Open(name)
		if err != nil {
			return "", nil, err
		}
		return name, lines, nil

	}
	return "", nil, errNoSource
}

func runCmd(ctx context.Context) any {
	return func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		store *saves.Store,
		newEngine novelvm.NewEngineFunc,
		newScheduler novelhost.NewScheduler,
		tap debugs.Tap,
		eval debugs.Eval,
	) error {
		name, lines, err := loadSource(store)
		if err != nil {
			return err
		}
		ctx, _ = newSpan(ctx, "run")
		logger.InfoContext(ctx, "program loaded",
			"name", name,
			"lines", len(lines),
		)

		if *saveName != "" {
			if err := store.Save(*saveName, lines); err != nil {
				return err
			}
		}

		engine := newEngine()
		engine.Populate(lines)
		engine.SetSource(name, engine.Source())

		if *checkOnly {
			err := engine.Build()
			fmt.Print(engine.Output())
			return err
		}

		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".novel_history")
		}
		rl, err := novelhost.NewReadline(historyFile)
		if err != nil {
			return err
		}
		defer rl.Close()

		console := &novelhost.Console{
			Engine:    engine,
			Scheduler: newScheduler(engine),
			Lines:     rl,
			Out:       os.Stdout,
		}
		runErr := console.Run(ctx)
		fmt.Println()

		var fault *novelvm.Fault
		if *traceOnStop && errors.As(runErr, &fault) {
			engine.WriteTrace(os.Stderr)
		}

		globals := map[string]any{
			"engine": engine.Snapshot(),
		}
		for _, expr := range *inspect {
			v, err := eval(expr, globals)
			if err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", expr, v)
		}
		if *tapOnStop {
			tap(ctx, "engine", globals)
		}

		if runErr != nil {
			return logs.WrapSpan(ctx, runErr)
		}
		return nil
	}
}
