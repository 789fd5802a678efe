// Package token defines lexical token kinds and the backslash-command table for
// texcalc expressions.
// Invariants:
//   - Token.Span is a byte range into the original source; Text is not stored,
//     callers slice the source when they need it.
//   - Every token sequence ends with exactly one End token with a zero-width span.
//   - Command kinds are reserved: the lexer resolves backslash-commands through
//     the command table and never emits Command.
package token
