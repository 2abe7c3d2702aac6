package tanconfigs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/reusee/tan/cmds"
	"github.com/reusee/tan/configs"
	"github.com/reusee/tan/logs"
	"github.com/reusee/tan/numerals"
	"github.com/reusee/tan/tanlang"
	"github.com/reusee/tan/vars"
)

type DialectName string

var dialectFlag = cmds.Var[DialectName]("dialect")

// DialectName is the flag value, then the config value, then minilang.
func (Module) DialectName(
	loader configs.Loader,
) DialectName {
	return vars.FirstNonZero(
		*dialectFlag,
		configs.First[DialectName](loader, "dialect"),
		DialectName(tanlang.MiniLang.Name),
	)
}

type DialectConfig struct {
	Name     string `json:"name"`
	Let      string `json:"let"`
	Print    string `json:"print"`
	Assign   string `json:"assign"`
	LParen   string `json:"lparen"`
	RParen   string `json:"rparen"`
	Notation string `json:"notation"`
}

func (d DialectConfig) Dialect() (tanlang.Dialect, error) {
	notation, ok := numerals.Lookup(d.Notation)
	if !ok {
		return tanlang.Dialect{}, fmt.Errorf("dialect %s: unknown notation %q", d.Name, d.Notation)
	}
	dialect := tanlang.Dialect{
		Name:     d.Name,
		Let:      d.Let,
		Print:    d.Print,
		Assign:   d.Assign,
		LParen:   d.LParen,
		RParen:   d.RParen,
		Notation: notation,
	}
	if err := dialect.Validate(); err != nil {
		return tanlang.Dialect{}, err
	}
	return dialect, nil
}

// CustomDialects are the dialects defined in config files.
type CustomDialects []DialectConfig

func (Module) CustomDialects(
	loader configs.Loader,
) (ret CustomDialects) {
	for list := range configs.All[[]DialectConfig](loader, "dialects") {
		ret = append(ret, list...)
	}
	return
}

// GetDialect resolves DialectName among the built-in and custom dialects.
type GetDialect func() (tanlang.Dialect, error)

func (Module) GetDialect(
	name DialectName,
	custom CustomDialects,
	logger logs.Logger,
) GetDialect {
	return sync.OnceValues(func() (tanlang.Dialect, error) {
		// config files shadow built-in dialects of the same name
		for _, c := range custom {
			if strings.EqualFold(c.Name, string(name)) {
				logger.Debug("custom dialect", "name", c.Name)
				return c.Dialect()
			}
		}
		if dialect, ok := tanlang.LookupDialect(string(name)); ok {
			return dialect, nil
		}
		return tanlang.Dialect{}, fmt.Errorf("unknown dialect: %s", name)
	})
}
