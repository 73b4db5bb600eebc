package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Mode selects between real and hermetic environments.
// Development mode skips config files and environment variables.
type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Module provides Mode and the *testing.T of the current test, nil outside tests.
type Module struct {
	dscope.Module
	mode Mode
	t    *testing.T
}

// ForProduction is the mode of cmd/novel: config files and environment are honored.
func ForProduction() Module {
	return Module{
		mode: ModeProduction,
	}
}

// ForTest provides a hermetic development scope bound to t.
func ForTest(t *testing.T) Module {
	return Module{
		mode: ModeDevelopment,
		t:    t,
	}
}

func (m Module) Mode() Mode {
	return m.mode
}

func (m Module) T() *testing.T {
	return m.t
}
