package novelconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/novel/configs"
	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/modes"
)

//go:embed schema.cue
var schema string

var configFilenames = []string{
	"novel.cue",
	".novel.cue",
}

// ConfigsLoader reads novel.cue files from the working directory, the user config dir and /etc, in that precedence.
// Development mode gets an empty loader.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode != modes.ModeProduction {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	paths := findConfigFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config files",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
