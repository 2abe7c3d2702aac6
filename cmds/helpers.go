package cmds

// Var defines word `name <value>` setting the value, and `name.` resetting it.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines word `name` turning it on and `!name` turning it off.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines word `name <value>` appending to a list.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
