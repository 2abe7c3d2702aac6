package tanconfigs

import (
	"github.com/reusee/tan/cmds"
	"github.com/reusee/tan/configs"
)

// Trace logs the intermediate results of each compilation.
type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}

// Run executes compiled programs.
type Run bool

var runFlag = cmds.Switch("-run")

func (Module) Run(
	loader configs.Loader,
) Run {
	return Run(*runFlag || configs.First[bool](loader, "run"))
}
