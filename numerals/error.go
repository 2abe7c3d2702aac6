package numerals

import "fmt"

type FormatError struct {
	Notation string
	Text     string
	Char     rune // zero when the literal is well formed but not representable
	Reason   string
}

func (f *FormatError) Error() string {
	if f.Char != 0 {
		return fmt.Sprintf("%s numeral %q: unexpected symbol %q", f.Notation, f.Text, f.Char)
	}
	return fmt.Sprintf("%s numeral %q: %s", f.Notation, f.Text, f.Reason)
}
