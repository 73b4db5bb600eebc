package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/novel/debugs"
	"github.com/reusee/novel/novelhost"
	"github.com/reusee/novel/saves"
)

type Module struct {
	dscope.Module
	Host   novelhost.Module
	Saves  saves.Module
	Debugs debugs.Module
}
