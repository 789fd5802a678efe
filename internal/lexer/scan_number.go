package lexer

import (
	"strconv"

	"texcalc/internal/diag"
	"texcalc/internal/token"
)

// scanNumber принимает цифры и не более одной точки: 42, 3.14, .5, 5.
// Одиночная "." и всё, что не разбирает strconv.ParseFloat (в том числе
// переполнение), даёт InvalidNumber на весь отсканированный фрагмент.
func (lx *Lexer) scanNumber() (token.Token, *diag.Error) {
	start := lx.cursor.Mark()
	startPos := lx.cursor.Pos

	hasDot := false
	lx.cursor.BumpWhile(func(r rune) bool {
		if r == '.' {
			if hasDot {
				return false
			}
			hasDot = true
			return true
		}
		return isDec(r)
	})

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.cursor.runes[startPos:lx.cursor.Pos])
	if text == "." {
		return token.Token{}, diag.NewInvalidNumber(sp)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, diag.NewInvalidNumber(sp)
	}
	return token.Token{Kind: token.Number, Span: sp, Value: value}, nil
}
