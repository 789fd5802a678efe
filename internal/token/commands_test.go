package token_test

import (
	"testing"

	"texcalc/internal/token"
)

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name   string
		want   token.Kind
		wantOK bool
	}{
		{name: "times", want: token.Mul, wantOK: true},
		{name: "div", want: token.Div, wantOK: true},
		{name: "unknown", want: token.Invalid, wantOK: false},
		{name: "Times", want: token.Invalid, wantOK: false},
		{name: "", want: token.Invalid, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := token.LookupCommand(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LookupCommand(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCommandsReturnsCopy(t *testing.T) {
	cmds := token.Commands()
	if len(cmds) != 2 || cmds[0].Name != "times" || cmds[1].Name != "div" {
		t.Fatalf("unexpected command table %+v", cmds)
	}
	cmds[0].Kind = token.Plus
	if k, _ := token.LookupCommand("times"); k != token.Mul {
		t.Fatalf("mutating Commands() result changed the table: times -> %v", k)
	}
}
