package adapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowAll_Confirm(t *testing.T) {
	assert.True(t, AllowAll{}.Confirm("/any/path"))
}

func TestTerminalConfirmer_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes short", "y\n", true},
		{"yes long", "yes\n", true},
		{"yes uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"garbage", "maybe\n", false},
		{"exhausted input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			c := NewTerminalConfirmer(strings.NewReader(tt.input), &out, "Delete")

			assert.Equal(t, tt.want, c.Confirm("/data/dup.txt"))
			assert.Contains(t, out.String(), "Delete /data/dup.txt?")
		})
	}
}

func TestTerminalConfirmer_ConsumesOneLinePerCandidate(t *testing.T) {
	var out bytes.Buffer

	c := NewTerminalConfirmer(strings.NewReader("y\nn\ny\n"), &out, "Delete")

	assert.True(t, c.Confirm("/a"))
	assert.False(t, c.Confirm("/b"))
	assert.True(t, c.Confirm("/c"))
}
