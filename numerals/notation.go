package numerals

import (
	"slices"
	"strings"
)

// Notation maps numeral literal text to an integer value.
type Notation interface {
	Name() string
	// Match returns the byte length of the numeral literal starting at offset, or 0.
	Match(src string, offset int) int
	Decode(text string) (int64, error)
}

// Encoder renders a value back into a notation's literal text.
type Encoder interface {
	Encode(value int64) (string, error)
}

var builtin = map[string]Notation{
	"decimal": Decimal{},
	"maya":    Maya,
}

func Lookup(name string) (Notation, bool) {
	n, ok := builtin[strings.ToLower(name)]
	return n, ok
}

func Names() []string {
	var names []string
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
