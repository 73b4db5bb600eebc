package novelhost

import "github.com/reusee/novel/novelvm"

// Message is a client request on the websocket.
type Message struct {
	Op    string   `json:"op"`
	Lines []string `json:"lines,omitempty"`
	Key   *Key     `json:"key,omitempty"`
	Text  *string  `json:"text,omitempty"`
}

const (
	OpPopulate = "populate"
	OpBuild    = "build"
	OpStart    = "start"
	OpStep     = "step"
	OpKey      = "key"
	OpSubmit   = "submit"
	OpReset    = "reset"
)

// Status is what a host polls each tick, sent to websocket clients after every change.
type Status struct {
	State      string `json:"state"`
	Executable bool   `json:"executable"`
	Waiting    bool   `json:"waiting"`
	InputKind  string `json:"input_kind,omitempty"`
	CanStep    bool   `json:"can_step"`
	// Output holds the engine output starting at byte OutputFrom.
	// Websocket clients get only the tail they have not seen, and OutputFrom 0 after a build.
	Output     string `json:"output"`
	OutputFrom int    `json:"output_from"`
	Pending    string `json:"pending"`
	PC         int    `json:"pc"`
	Pointer    int    `json:"pointer"`
	Error      string `json:"error,omitempty"`
}

func StatusOf(e *novelvm.Engine) Status {
	status := Status{
		State:      e.State().String(),
		Executable: e.IsExecutable(),
		Waiting:    e.IsWaitingForInput(),
		CanStep:    e.CanStep(),
		Output:     e.Output(),
		Pending:    e.PendingEntry(),
		PC:         e.PC(),
		Pointer:    e.Pointer(),
	}
	if status.Waiting {
		status.InputKind = e.PendingKind().String()
	}
	return status
}
