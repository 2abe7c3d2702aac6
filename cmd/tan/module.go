package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tan/drivers"
)

type Module struct {
	dscope.Module
	Drivers drivers.Module
}
