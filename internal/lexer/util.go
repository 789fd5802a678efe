package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isNumberStart(r rune) bool { return isDec(r) || r == '.' }

// isAlpha matches the Unicode Alphabetic property: letters, letter numbers
// (Ⅻ) and Other_Alphabetic marks such as Devanagari vowel signs and Ⓐ.
func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

// Identifiers start with an alphabetic rune; commands may start with '_'.
func isIdentStart(r rune) bool { return isAlpha(r) }

func isIdentContinue(r rune) bool { return r == '_' || isAlpha(r) }

func isSpace(r rune) bool { return unicode.IsSpace(r) }
