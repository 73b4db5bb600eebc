package novelconfigs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/novel/cmds"
	"github.com/reusee/novel/configs"
	"github.com/reusee/novel/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		steps StepsPerTick,
		interval TickInterval,
		dir SavesDir,
		listen Listen,
		maxSessions MaxSessions,
		allowRemote AllowRemote,
	) {
		if steps != DefaultStepsPerTick {
			t.Fatalf("got %v", steps)
		}
		if time.Duration(interval) != DefaultTickInterval {
			t.Fatalf("got %v", interval)
		}
		if dir != DefaultSavesDir {
			t.Fatalf("got %v", dir)
		}
		if listen != DefaultListen {
			t.Fatalf("got %v", listen)
		}
		if maxSessions != DefaultMaxSessions {
			t.Fatalf("got %v", maxSessions)
		}
		if allowRemote {
			t.Fatal()
		}
	})
}

func TestCueValues(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoaderFromStrings(schema, `
steps_per_tick: 50
tick_interval: "5ms"
saves_dir: "/tmp/novel"
allow_remote: true
`)
		},
	).Call(func(
		steps StepsPerTick,
		interval TickInterval,
		dir SavesDir,
		allowRemote AllowRemote,
	) {
		if steps != 50 {
			t.Fatalf("got %v", steps)
		}
		if time.Duration(interval) != time.Millisecond*5 {
			t.Fatalf("got %v", interval)
		}
		if dir != "/tmp/novel" {
			t.Fatalf("got %v", dir)
		}
		if !allowRemote {
			t.Fatal()
		}
	})
}

func TestEnvOverridesCue(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoaderFromStrings(schema, `saves_dir: "from-cue"`)
		},
		func() Env {
			return func(key string) string {
				if key == "NOVEL_SAVES_DIR" {
					return "from-env"
				}
				return ""
			}
		},
	).Call(func(
		dir SavesDir,
	) {
		if dir != "from-env" {
			t.Fatalf("got %v", dir)
		}
	})
}

func TestBadTickInterval(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoaderFromStrings(schema, `tick_interval: "soon"`)
		},
	).Call(func(
		interval TickInterval,
	) {
		if time.Duration(interval) != DefaultTickInterval {
			t.Fatalf("got %v", interval)
		}
	})
}

func TestFindConfigFiles(t *testing.T) {
	dir := t.TempDir()
	if paths := findConfigFiles([]string{dir}); len(paths) != 0 {
		t.Fatalf("got %v", paths)
	}
	path := filepath.Join(dir, ".novel.cue")
	if err := os.WriteFile(path, []byte("steps_per_tick: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	paths := findConfigFiles([]string{dir})
	if len(paths) != 1 || paths[0] != path {
		t.Fatalf("got %v", paths)
	}
	loader := configs.NewLoader(paths, schema)
	if n := configs.First[int](loader, "steps_per_tick"); n != 3 {
		t.Fatalf("got %d", n)
	}
}

func TestNonPositiveFlags(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-max-sessions", "-1",
		"-steps-per-tick", "-5",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"-max-sessions.",
		"-steps-per-tick.",
	})
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		maxSessions MaxSessions,
		steps StepsPerTick,
	) {
		if maxSessions != DefaultMaxSessions {
			t.Fatalf("got %v", maxSessions)
		}
		if steps != DefaultStepsPerTick {
			t.Fatalf("got %v", steps)
		}
	})
}

func TestAllowRemotePrecedence(t *testing.T) {
	for _, c := range []struct {
		env      string
		cue      string
		expected AllowRemote
	}{
		{"", "", false},
		{"", "allow_remote: true", true},
		{"false", "allow_remote: true", false},
		{"true", "allow_remote: false", true},
		{"", "allow_remote: false", false},
	} {
		dscope.New(
			modes.ForTest(t),
			new(Module),
		).Fork(
			func() configs.Loader {
				return configs.NewLoaderFromStrings(schema, c.cue)
			},
			func() Env {
				return func(key string) string {
					if key == "NOVEL_ALLOW_REMOTE" {
						return c.env
					}
					return ""
				}
			},
		).Call(func(
			allowRemote AllowRemote,
		) {
			if allowRemote != c.expected {
				t.Fatalf("env %q cue %q: got %v", c.env, c.cue, allowRemote)
			}
		})
	}
}
