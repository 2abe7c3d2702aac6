package vars

import "strings"

// StrToBool reports whether str is one of the affirmative words of the command line.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
