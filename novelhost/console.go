package novelhost

import (
	"context"
	"io"

	"github.com/chzyer/readline"
	"github.com/reusee/novel/novelvm"
)

// LineReader reads one line of input per prompt. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var _ LineReader = (*readline.Instance)(nil)

func NewReadline(historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "? ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, wrap(err)
	}
	return rl, nil
}

const (
	numericPrompt = "? "
	textPrompt    = "a "
)

// Console runs a program in a terminal: output is streamed to Out, input requests are answered from Lines.
type Console struct {
	Engine    *novelvm.Engine
	Scheduler *Scheduler
	Lines     LineReader
	Out       io.Writer

	written int
}

// Run builds, starts and drives the engine to completion.
// It returns the build error or fault that stopped the program, or nil when it finished.
func (c *Console) Run(ctx context.Context) error {
	e := c.Engine
	c.written = 0

	if err := e.Build(); err != nil {
		c.flush()
		return err
	}
	c.flush()
	if err := e.Start(); err != nil {
		return err
	}

	for {
		if err := c.Scheduler.Run(ctx, func(int) {
			c.flush()
		}); err != nil {
			return err
		}

		switch e.State() {

		case novelvm.Halted:
			c.flush()
			return nil

		case novelvm.Faulted:
			c.flush()
			return e.Err()

		case novelvm.WaitingForInput:
			if err := c.answer(); err != nil {
				return err
			}

		default:
			return novelvm.ErrNotExecutable
		}
	}
}

func (c *Console) answer() error {
	e := c.Engine
	prompt := numericPrompt
	if e.PendingKind() == novelvm.TextInput {
		prompt = textPrompt
	}
	c.Lines.SetPrompt(prompt)
	line, err := c.Lines.Readline()
	if err != nil {
		return err
	}

	for _, r := range line {
		if _, err := Feed(e, KeyOf(r)); err != nil {
			return err
		}
	}

	// the terminal already shows the typed line, skip its echo in the log
	echo := len(e.PendingEntry()) + 1
	c.flush()
	_, err = Feed(e, Key{K: "<enter>"})
	c.written = min(c.written+echo, len(e.Output()))
	c.flush()
	if err != nil && e.State() != novelvm.Faulted {
		return err
	}
	return nil
}

func (c *Console) flush() {
	output := c.Engine.Output()
	if len(output) < c.written {
		// rebuilt
		c.written = 0
	}
	if len(output) > c.written {
		io.WriteString(c.Out, output[c.written:])
		c.written = len(output)
	}
}
