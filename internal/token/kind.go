package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value; the lexer never emits it.
	Invalid Kind = iota
	// End marks the end of the source input.
	End

	// Number represents a numeric literal; the value is in Token.Value.
	Number
	// Ident represents an identifier; the name is in Token.Name.
	Ident
	// Command is reserved for backslash-commands that do not map to an operator.
	Command

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Mul represents the multiplication operator token.
	Mul // * or \times
	// Div represents the division operator token.
	Div // / or \div
	// Pow represents the power operator token.
	Pow // ^
	// Equal represents the equals sign.
	Equal // =
	// LParen represents the left parenthesis operator token.
	LParen // (
	// RParen represents the right parenthesis operator token.
	RParen // )
	// LBrace represents the left brace operator token.
	LBrace // {
	// RBrace represents the right brace operator token.
	RBrace // }
)

var kindNames = [...]string{
	Invalid: "Invalid",
	End:     "End",
	Number:  "Number",
	Ident:   "Ident",
	Command: "Command",
	Plus:    "Plus",
	Minus:   "Minus",
	Mul:     "Mul",
	Div:     "Div",
	Pow:     "Pow",
	Equal:   "Equal",
	LParen:  "LParen",
	RParen:  "RParen",
	LBrace:  "LBrace",
	RBrace:  "RBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe returns the wording used when a token kind appears in a message,
// e.g. "expected number (numeric literal, e.g. 3.14, 42), found +".
func (k Kind) Describe() string {
	switch k {
	case End:
		return "end of input"
	case Number:
		return "number (numeric literal, e.g. 3.14, 42)"
	case Ident:
		return "identifier (variable or symbol)"
	case Command:
		return "command (e.g. \\sqrt, \\sin)"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Equal:
		return "="
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	default:
		return "invalid token"
	}
}

// LookupSymbol maps a single punctuation character to its token kind.
func LookupSymbol(r rune) (Kind, bool) {
	switch r {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '*':
		return Mul, true
	case '/':
		return Div, true
	case '^':
		return Pow, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	case '{':
		return LBrace, true
	case '}':
		return RBrace, true
	case '=':
		return Equal, true
	}
	return Invalid, false
}
