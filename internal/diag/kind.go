package diag

// ErrorKind classifies a lexical or syntactic failure.
type ErrorKind uint8

const (
	// UnexpectedCharacter is a character outside every token class.
	UnexpectedCharacter ErrorKind = iota + 1
	// InvalidNumber is a malformed or out-of-range numeric literal.
	InvalidNumber
	// UnknownCommand is a backslash-command missing from the command table.
	UnknownCommand
	// UnexpectedToken is reserved for the parser's grammar violations.
	UnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case InvalidNumber:
		return "InvalidNumber"
	case UnknownCommand:
		return "UnknownCommand"
	case UnexpectedToken:
		return "UnexpectedToken"
	}
	return "UnknownErrorKind"
}

// Code returns the stable diagnostic code for the kind.
func (k ErrorKind) Code() Code {
	switch k {
	case UnexpectedCharacter:
		return LexUnknownChar
	case InvalidNumber:
		return LexBadNumber
	case UnknownCommand:
		return LexUnknownCommand
	case UnexpectedToken:
		return SynUnexpectedToken
	}
	return UnknownCode
}
