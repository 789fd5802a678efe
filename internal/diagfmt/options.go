package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Path, when set, is printed after the location as "path:line:col".
	Path string
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	Path             string
}

// TokenFormat selects how token streams are written.
type TokenFormat uint8

const (
	TokenFormatPretty TokenFormat = iota
	TokenFormatJSON
	TokenFormatMsgpack
)

// ParseTokenFormat converts a --format flag value.
func ParseTokenFormat(s string) (TokenFormat, bool) {
	switch s {
	case "pretty", "":
		return TokenFormatPretty, true
	case "json":
		return TokenFormatJSON, true
	case "msgpack":
		return TokenFormatMsgpack, true
	}
	return TokenFormatPretty, false
}
