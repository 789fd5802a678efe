package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"texcalc/internal/source"
)

// Cursor представляет собой позицию в тексте: индекс кодовой точки и байтовое смещение.
type Cursor struct {
	runes []rune
	Pos   int    // index into runes
	Off   uint32 // byte offset of runes[Pos]
}

// NewCursor creates a cursor over the code points of src.
func NewCursor(src string) Cursor {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{runes: []rune(src)}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Pos >= len(c.runes)
}

// Peek returns the current code point, or utf8.RuneError with ok=false at EOF.
func (c *Cursor) Peek() (r rune, ok bool) {
	if c.EOF() {
		return utf8.RuneError, false
	}
	return c.runes[c.Pos], true
}

// Bump перемещает курсор на одну кодовую точку вперед и возвращает её
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return utf8.RuneError
	}
	r := c.runes[c.Pos]
	c.Pos++
	size, err := safecast.Conv[uint32](utf8.RuneLen(r))
	if err != nil {
		panic(fmt.Errorf("rune length overflow: %w", err))
	}
	c.Off += size
	return r
}

// BumpWhile consumes code points while pred holds.
func (c *Cursor) BumpWhile(pred func(rune) bool) {
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			return
		}
		c.Bump()
	}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.Off,
	}
}
