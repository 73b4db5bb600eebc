package saves

import (
	"github.com/reusee/dscope"
	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/novelconfigs"
)

type Module struct {
	dscope.Module
	Configs novelconfigs.Module
}

func (Module) Store(
	dir novelconfigs.SavesDir,
	logger logs.Logger,
) *Store {
	return &Store{
		Dir:    string(dir),
		Logger: logger,
	}
}
