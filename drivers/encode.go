package drivers

import (
	"fmt"

	"github.com/reusee/tan/numerals"
	"github.com/reusee/tan/tanconfigs"
)

// Encode writes a value as a numeral literal of the configured dialect.
type Encode func(value int64) (string, error)

func (Module) Encode(
	getDialect tanconfigs.GetDialect,
) Encode {
	return func(value int64) (string, error) {
		dialect, err := getDialect()
		if err != nil {
			return "", err
		}
		encoder, ok := dialect.Notation.(numerals.Encoder)
		if !ok {
			return "", fmt.Errorf("notation %s cannot encode", dialect.Notation.Name())
		}
		return encoder.Encode(value)
	}
}
