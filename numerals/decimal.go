package numerals

import (
	"math"
	"strconv"
)

type Decimal struct{}

var _ Notation = Decimal{}
var _ Encoder = Decimal{}

func (Decimal) Name() string {
	return "decimal"
}

func (Decimal) Match(src string, offset int) int {
	i := offset
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	return i - offset
}

func (d Decimal) Decode(text string) (int64, error) {
	if text == "" {
		return 0, &FormatError{Notation: d.Name(), Text: text, Reason: "empty literal"}
	}
	var value int64
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, &FormatError{Notation: d.Name(), Text: text, Char: r}
		}
		digit := int64(r - '0')
		if value > (math.MaxInt64-digit)/10 {
			return 0, &FormatError{Notation: d.Name(), Text: text, Reason: "value out of range"}
		}
		value = value*10 + digit
	}
	return value, nil
}

func (d Decimal) Encode(value int64) (string, error) {
	if value < 0 {
		return "", &FormatError{Notation: d.Name(), Text: strconv.FormatInt(value, 10), Reason: "negative value"}
	}
	return strconv.FormatInt(value, 10), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
