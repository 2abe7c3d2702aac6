package drivers

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tan/logs"
	"github.com/reusee/tan/tanconfigs"
)

type Module struct {
	dscope.Module
	Configs tanconfigs.Module
	Logs    logs.Module
}
