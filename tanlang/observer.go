package tanlang

// Observer receives the intermediate results of a compilation.
type Observer interface {
	OnTokens(tokens []Token)
	OnProgram(program *Program)
	OnOutput(output string)
}

// ObserverFuncs adapts functions to Observer, nil fields are skipped.
type ObserverFuncs struct {
	Tokens  func([]Token)
	Program func(*Program)
	Output  func(string)
}

var _ Observer = ObserverFuncs{}

func (o ObserverFuncs) OnTokens(tokens []Token) {
	if o.Tokens != nil {
		o.Tokens(tokens)
	}
}

func (o ObserverFuncs) OnProgram(program *Program) {
	if o.Program != nil {
		o.Program(program)
	}
}

func (o ObserverFuncs) OnOutput(output string) {
	if o.Output != nil {
		o.Output(output)
	}
}
