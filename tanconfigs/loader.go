package tanconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tan/configs"
	"github.com/reusee/tan/logs"
	"github.com/reusee/tan/modes"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"tan.cue",
	".tan.cue",
}

// ConfigsLoader searches the working directory, the user config directory and /etc, in that precedence.
// No file is read in development mode.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, Schema)
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}

	return configs.NewLoader(paths, Schema)
}
