package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction reads config files from the usual places and has no test.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
