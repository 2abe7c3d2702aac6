package tanconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tan/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
