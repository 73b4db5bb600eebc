package novelconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/novel/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}
