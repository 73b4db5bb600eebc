package novelconfigs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/modes"
)

// Env looks up an environment variable, falling back to the .env file in the working directory.
type Env func(key string) string

func (Module) Env(
	logger logs.Logger,
	mode modes.Mode,
) Env {
	if mode != modes.ModeProduction {
		return func(string) string {
			return ""
		}
	}

	dotenv, err := godotenv.Read(".env")
	if err != nil && !os.IsNotExist(err) {
		logger.Warn("read .env", "error", err)
	}

	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}
}
