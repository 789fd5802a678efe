package driver

import (
	"fmt"

	"texcalc/internal/diag"
	"texcalc/internal/lexer"
	"texcalc/internal/observ"
	"texcalc/internal/source"
	"texcalc/internal/token"
)

// TokenizeOptions configures loading and lexing of one input.
type TokenizeOptions struct {
	NFC     bool // compose the source into NFC before lexing
	Timings bool // record phase timings in TokenizeResult.Timing
}

// TokenizeResult holds the outcome of lexing one source.
// Exactly one of Tokens and Err is set.
type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
	Err    *diag.Error
	Timing *observ.Report
}

// Failed reports whether lexing stopped on a diagnostic.
func (r *TokenizeResult) Failed() bool { return r.Err != nil }

// Tokenize loads path and lexes it. The returned error covers I/O and encoding
// problems and lexer errors that are not a *diag.Error; lexical failures are
// reported in TokenizeResult.Err.
func Tokenize(path string, opts TokenizeOptions) (*TokenizeResult, error) {
	timer := newTimer(opts)
	idx := timer.Begin(observ.PhaseLoad)
	file, err := source.Load(path, source.LoadOptions{NFC: opts.NFC})
	timer.End(idx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tokenizeFile(file, timer)
}

// TokenizeText lexes in-memory text under the display name name.
func TokenizeText(name, text string, opts TokenizeOptions) (*TokenizeResult, error) {
	timer := newTimer(opts)
	idx := timer.Begin(observ.PhaseLoad)
	file, err := source.FromString(name, text, source.LoadOptions{NFC: opts.NFC})
	timer.End(idx, name)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(file, timer)
}

// lexSource is replaced in tests to simulate lexer failures.
var lexSource = lexer.Lex

func tokenizeFile(file *source.File, timer *observ.Timer) (*TokenizeResult, error) {
	res := &TokenizeResult{File: file}

	idx := timer.Begin(observ.PhaseLex)
	tokens, err := lexSource(file.Content)
	if err != nil {
		de, ok := diag.AsError(err)
		if !ok {
			timer.End(idx, "failed")
			return nil, fmt.Errorf("lex %s: %w", file.Path, err)
		}
		res.Err = de
		timer.End(idx, de.Code().ID())
	} else {
		res.Tokens = tokens
		timer.End(idx, fmt.Sprintf("%d tokens", len(tokens)))
	}

	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}
	return res, nil
}

func newTimer(opts TokenizeOptions) *observ.Timer {
	if !opts.Timings {
		return nil
	}
	return observ.NewTimer()
}
