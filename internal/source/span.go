package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into UTF-8 source text.
type Span struct {
	Start uint32 `json:"start"` // в байтах включительно
	End   uint32 `json:"end"`   // в байтах не включительно
}

// NewSpan builds a span, swapping the bounds if they arrive reversed.
func NewSpan(start, end uint32) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Within reports whether the span lies inside [0, n].
func (s Span) Within(n uint32) bool {
	return s.Start <= s.End && s.End <= n
}

func (s Span) ShiftRight(n uint32) Span {
	return Span{
		Start: s.Start + n,
		End:   s.End + n,
	}
}
