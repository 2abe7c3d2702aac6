package configs

import "errors"

// First returns the value at path, or the zero value if no file defines it.
// Invalid files and mistyped values panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
