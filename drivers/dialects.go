package drivers

import (
	"slices"

	"github.com/reusee/tan/tanconfigs"
	"github.com/reusee/tan/tanlang"
)

// ListDialects returns the usable dialect names, built-in first.
type ListDialects func() []string

func (Module) ListDialects(
	custom tanconfigs.CustomDialects,
) ListDialects {
	return func() []string {
		var names []string
		for _, d := range tanlang.Dialects() {
			names = append(names, d.Name)
		}
		for _, c := range custom {
			if !slices.Contains(names, c.Name) {
				names = append(names, c.Name)
			}
		}
		return names
	}
}
