package token

// CommandOperator pairs a backslash-command name with the operator it lexes to.
type CommandOperator struct {
	Name string
	Kind Kind
}

// commandOperators is fixed at build time. New commands that resolve to an
// existing operator are appended here.
var commandOperators = [...]CommandOperator{
	{Name: "times", Kind: Mul},
	{Name: "div", Kind: Div},
}

// LookupCommand resolves a command name (without the backslash).
func LookupCommand(name string) (Kind, bool) {
	for _, c := range commandOperators {
		if c.Name == name {
			return c.Kind, true
		}
	}
	return Invalid, false
}

// Commands returns a copy of the command table in declaration order.
func Commands() []CommandOperator {
	out := make([]CommandOperator, len(commandOperators))
	copy(out, commandOperators[:])
	return out
}
