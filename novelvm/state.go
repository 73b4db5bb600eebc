package novelvm

type State uint8

const (
	NotBuilt State = iota
	Built
	Running
	WaitingForInput
	Halted
	Faulted
)

var stateNames = [...]string{
	NotBuilt:        "not built",
	Built:           "built",
	Running:         "running",
	WaitingForInput: "waiting for input",
	Halted:          "halted",
	Faulted:         "faulted",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Executable reports whether a program in this state may still be stepped.
func (s State) Executable() bool {
	return s == Built || s == Running || s == WaitingForInput
}
