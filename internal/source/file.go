package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidUTF8 is returned when a source is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// LoadOptions controls the normalisation applied to loaded sources.
type LoadOptions struct {
	// NFC composes the text into Unicode normalisation form C before lexing.
	// Spans then refer to the normalised text, which File.Content holds.
	NFC bool
}

// FromString wraps in-memory text (stdin, --expr, tests) as a virtual File.
func FromString(name, text string, opts LoadOptions) (*File, error) {
	return newFile(name, text, FileVirtual, opts)
}

// Load reads a file from disk and normalises BOM, CRLF and, optionally, NFC.
func Load(path string, opts LoadOptions) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newFile(path, string(content), 0, opts)
}

func newFile(path, content string, flags FileFlags, opts LoadOptions) (*File, error) {
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if opts.NFC && !norm.NFC.IsNormalString(content) {
		content = norm.NFC.String(content)
		flags |= FileNormalizedNFC
	}

	return &File{
		Path:    normalizePath(path),
		Content: content,
		Flags:   flags,
	}, nil
}

// Line returns the 1-based line of the file content, or "" when out of range.
func (f *File) Line(n uint32) string {
	return LineText(f.Content, n)
}
