package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"texcalc/internal/source"
	"texcalc/internal/token"
)

const tokenTextColumn = 12

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Name  string      `json:"name,omitempty"`
	Value *float64    `json:"value,omitempty"`
	Span  source.Span `json:"span"`
}

func tokenText(src string, sp source.Span) string {
	if !sp.Within(uint32(len(src))) {
		return ""
	}
	return src[sp.Start:sp.End]
}

func toTokenOutputs(src string, tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		o := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tokenText(src, tok.Span),
			Span: tok.Span,
		}
		switch tok.Kind {
		case token.Number:
			v := tok.Value
			o.Value = &v
		case token.Ident, token.Command:
			o.Name = tok.Name
		}
		out = append(out, o)
		if tok.Kind == token.End {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, src string, tokens []token.Token) error {
	for i, tok := range tokens {
		startPos, endPos := source.Resolve(src, tok.Span)

		text := ""
		if t := tokenText(src, tok.Span); t != "" {
			text = strconv.Quote(t)
		}

		if _, err := fmt.Fprintf(w, "%3d: %-7s %s at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(),
			runewidth.FillRight(text, tokenTextColumn),
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}

		if tok.Kind == token.End {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, src string, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toTokenOutputs(src, tokens))
}

// FormatTokensMsgpack writes the token stream as a msgpack array using the same
// field names as the JSON form.
func FormatTokensMsgpack(w io.Writer, src string, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(toTokenOutputs(src, tokens))
}

// DecodeTokensMsgpack reads back a stream written by FormatTokensMsgpack.
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	var out []TokenOutput
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// FormatTokens dispatches on format.
func FormatTokens(w io.Writer, format TokenFormat, src string, tokens []token.Token) error {
	switch format {
	case TokenFormatPretty:
		return FormatTokensPretty(w, src, tokens)
	case TokenFormatJSON:
		return FormatTokensJSON(w, src, tokens)
	case TokenFormatMsgpack:
		return FormatTokensMsgpack(w, src, tokens)
	}
	return fmt.Errorf("unknown token format: %d", format)
}
