package acpicall

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  uint32
		err   error
	}{
		{name: "hex", reply: "0x1", want: 1},
		{name: "hex multi digit", reply: "0xfb001", want: 0xfb001},
		{name: "decimal", reply: "7", want: 7},
		{name: "trailing nulls", reply: "0x2\x00\x00", want: 2},
		{name: "method not found", reply: "Error: AE_NOT_FOUND", err: ErrMethodNotFound},
		{name: "other error", reply: "Error: AE_BAD_PARAMETER", err: ErrCallFailed},
		{name: "garbage", reply: "not a number", err: ErrCallFailed},
		{name: "buffer reply", reply: "{0x01, 0x02}", err: ErrCallFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReply(tt.reply, `\_SB.FOO`)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("parseReply(%q) error = %v, want %v", tt.reply, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseReply(%q) returned error: %v", tt.reply, err)
			}
			if got != tt.want {
				t.Fatalf("parseReply(%q) = %#x, want %#x", tt.reply, got, tt.want)
			}
		})
	}
}

func TestCallModuleNotLoaded(t *testing.T) {
	p := NewWithPath(filepath.Join(t.TempDir(), "does", "not", "exist"))

	_, err := p.Call(`\_SB.FOO`)
	if !errors.Is(err, ErrModuleNotLoaded) {
		t.Fatalf("expected ErrModuleNotLoaded, got %v", err)
	}
}

func TestCallEmptyMethod(t *testing.T) {
	p := New()

	_, err := p.Call("")
	if !errors.Is(err, ErrCallFailed) {
		t.Fatalf("expected ErrCallFailed for empty method, got %v", err)
	}
}
