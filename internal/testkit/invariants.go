// Package testkit holds invariant checks shared by the lexer tests and the fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"texcalc/internal/diag"
	"texcalc/internal/token"
)

// CheckTokenInvariants verifies a successful lex of src:
// 1) the sequence is non-empty and ends with exactly one End token
// 2) End has a zero-width span at len(src)
// 3) every span lies inside [0, len(src)] and starts are non-decreasing
// 4) Number tokens carry their text span, Ident tokens carry a name
func CheckTokenInvariants(src string, tokens []token.Token) error {
	if len(tokens) == 0 {
		return fmt.Errorf("token sequence is empty")
	}
	n, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return fmt.Errorf("len src overflow: %w", err)
	}

	var prev uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.Start > sp.End {
			return fmt.Errorf("token %d: inverted span %v", i, sp)
		}
		if !sp.Within(n) {
			return fmt.Errorf("token %d: span %v outside [0,%d]", i, sp, n)
		}
		if sp.Start < prev {
			return fmt.Errorf("token %d: starts at %d before previous start %d", i, sp.Start, prev)
		}
		prev = sp.Start

		isLast := i == len(tokens)-1
		if (tok.Kind == token.End) != isLast {
			return fmt.Errorf("token %d: End must appear exactly once, as the last token", i)
		}
		switch tok.Kind {
		case token.Number:
			if sp.Empty() {
				return fmt.Errorf("token %d: empty number span", i)
			}
		case token.Ident:
			if tok.Name == "" {
				return fmt.Errorf("token %d: identifier without a name", i)
			}
		case token.Command, token.Invalid:
			return fmt.Errorf("token %d: lexer produced reserved kind %s", i, tok.Kind)
		}
	}

	last := tokens[len(tokens)-1].Span
	if !last.Empty() || last.Start != n {
		return fmt.Errorf("End span %v is not zero-width at %d", last, n)
	}
	return nil
}

// CheckErrorInvariants verifies that a failed lex returned a *diag.Error with a
// non-empty span inside src.
func CheckErrorInvariants(src string, err error) error {
	de, ok := diag.AsError(err)
	if !ok {
		return fmt.Errorf("error %T is not a *diag.Error", err)
	}
	n, convErr := safecast.Conv[uint32](len(src))
	if convErr != nil {
		return fmt.Errorf("len src overflow: %w", convErr)
	}
	if !de.Span.Within(n) {
		return fmt.Errorf("error span %v outside input of %d bytes", de.Span, n)
	}
	if de.Span.Empty() {
		return fmt.Errorf("error span %v is empty", de.Span)
	}
	if de.Message() == "" {
		return fmt.Errorf("error %v has no message", de.Kind)
	}
	return nil
}
