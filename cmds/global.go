package cmds

import "os"

// GlobalExecutor holds the commands defined at package init time by Var, Switch and friends.
var GlobalExecutor = NewExecutor()

var (
	osExit = os.Exit
	exit   = osExit
)

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against GlobalExecutor, printing the error and usage on failure.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n\n")
		GlobalExecutor.FprintUsage(os.Stderr)
		exit(2)
	}
}
