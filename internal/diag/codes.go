package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexUnknownChar    Code = 1001
	LexBadNumber      Code = 1004
	LexUnknownCommand Code = 1006

	// Парсерные (зарезервируем)
	SynUnexpectedToken Code = 2001
)

var codeDescription = map[Code]string{
	UnknownCode:        "Unknown error",
	LexUnknownChar:     "Unknown character",
	LexBadNumber:       "Bad number literal",
	LexUnknownCommand:  "Unknown command",
	SynUnexpectedToken: "Unexpected token",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
