package novelvm

// Snapshot is a read-only copy of the engine state for hosts and debugging.
type Snapshot struct {
	State      string
	Executable bool
	Waiting    bool
	PC         int
	Token      string
	Pointer    int
	Cells      map[int]uint32
	Stack      []uint32
	Pending    string
	InputKind  string
	Output     string
	Program    string
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:      e.state.String(),
		Executable: e.IsExecutable(),
		Waiting:    e.IsWaitingForInput(),
		PC:         e.pc,
		Token:      e.program.At(e.pc).String(),
		Pointer:    e.tape.Pointer(),
		Cells:      e.tape.NonZero(),
		Stack:      e.stack.Values(),
		Pending:    e.PendingEntry(),
		InputKind:  e.pending.Kind.String(),
		Output:     e.Output(),
		Program:    e.program.String(),
	}
}
