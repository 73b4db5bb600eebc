package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/novel/cmds"
	"github.com/reusee/novel/modes"
)

var (
	sourceFile  = cmds.Var[string]("-file", "read the program from a file")
	openName    = cmds.Var[string]("-open", "load a saved program")
	saveName    = cmds.Var[string]("-save", "save the program under a name before running")
	listSaves   = cmds.Switch("-saves", "list saved programs")
	deleteName  = cmds.Var[string]("-delete", "delete a saved program by exact name")
	checkOnly   = cmds.Switch("-check", "build only")
	serve       = cmds.Switch("-serve", "serve the websocket host")
	traceOnStop = cmds.Switch("-trace", "dump engine state after a fault")
	tapOnStop   = cmds.Switch("-tap", "open a starlark repl over the engine after the run")
	inspect     = cmds.Collect[string]("-inspect", "evaluate a starlark expression over the final engine state")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	switch {
	case *listSaves:
		scope.Call(listSavesCmd).Assign(&err)
	case *deleteName != "":
		scope.Call(deleteSaveCmd).Assign(&err)
	case *serve:
		scope.Call(serveCmd(ctx)).Assign(&err)
	default:
		scope.Call(runCmd(ctx)).Assign(&err)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
