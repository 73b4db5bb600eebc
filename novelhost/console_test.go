package novelhost

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/reusee/novel/novelvm"
	"github.com/stretchr/testify/assert"
)

type fakeLines struct {
	lines   []string
	prompts []string
}

func (f *fakeLines) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeLines) SetPrompt(prompt string) {
	f.prompts = append(f.prompts, prompt)
}

func newConsole(t *testing.T, src string, lines ...string) (*Console, *fakeLines, *bytes.Buffer) {
	e := novelvm.NewEngine(nil)
	e.SetSource("test", src)
	fake := &fakeLines{lines: lines}
	out := new(bytes.Buffer)
	return &Console{
		Engine: e,
		Scheduler: &Scheduler{
			Engine:       e,
			StepsPerTick: 1000,
			TickInterval: time.Millisecond,
		},
		Lines: fake,
		Out:   out,
	}, fake, out
}

func TestConsoleRun(t *testing.T) {
	c, fake, out := newConsole(t, "?0 = { &0 - : } ?a _ &a", "3", "Ok")
	assert.NoError(t, c.Run(context.Background()))
	assert.Equal(t, []string{"? ", "a "}, fake.prompts)
	// typed lines are not echoed twice
	assert.Equal(t,
		"[INFO]: Build Successful\n"+
			"321"+
			"O"+
			"\n[INFO]: Finished Execution\n",
		out.String(),
	)
}

func TestConsoleBuildError(t *testing.T) {
	c, _, out := newConsole(t, "+\n+?x")
	err := c.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, out.String(), "[ERROR]: Build Failure, expected '0' or 'a' after ? token at 2:2")
}

func TestConsoleFault(t *testing.T) {
	c, _, out := newConsole(t, "-")
	err := c.Run(context.Background())
	var fault *novelvm.Fault
	assert.ErrorAs(t, err, &fault)
	assert.Contains(t, out.String(), "[ERROR]: ")
}

func TestConsoleBadInput(t *testing.T) {
	c, _, out := newConsole(t, "?0&0", "twelve")
	err := c.Run(context.Background())
	var fault *novelvm.Fault
	assert.ErrorAs(t, err, &fault)
	assert.Equal(t, novelvm.BadInput, fault.Kind)
	assert.Contains(t, out.String(), "[ERROR]: ")
}

func TestConsoleEOF(t *testing.T) {
	c, _, _ := newConsole(t, "?0&0")
	assert.ErrorIs(t, c.Run(context.Background()), io.EOF)
}
