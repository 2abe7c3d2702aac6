package tanlang

import "errors"

type Options struct {
	Name     string   // source name in error positions
	Dialect  *Dialect // if nil, default to MiniLang
	Observer Observer
}

// Compile translates source to Python, stopping at the first error.
func Compile(source string, options Options) (string, error) {
	dialect := MiniLang
	if options.Dialect != nil {
		dialect = *options.Dialect
	}
	observer := options.Observer
	if observer == nil {
		observer = ObserverFuncs{}
	}
	src := NewSource(options.Name, source)

	tokens, err := tokenize(src, dialect)
	if err != nil {
		return "", err
	}
	observer.OnTokens(tokens)

	program, err := Parse(tokens)
	if err != nil {
		if errors.Is(err, ErrUnexpectedEnd) {
			err = WithPos(err, src.End())
		}
		return "", err
	}
	observer.OnProgram(program)

	output := Emit(program)
	observer.OnOutput(output)

	return output, nil
}
