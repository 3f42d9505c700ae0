package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRelative(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "docs/README.md", want: "docs/README.md"},
		{in: "docs//operations/../README.md", want: "docs/README.md"},
		{in: "./README.md", want: "README.md"},
		{in: ".", want: "."},
		{in: `docs\architecture`, want: "docs/architecture"},
		{in: "", wantErr: true},
		{in: "/etc/passwd", wantErr: true},
		{in: "../outside.md", wantErr: true},
		{in: "docs/../../outside.md", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CleanRelative(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound{Path: "x"}))
	assert.False(t, IsNotFound(ErrInvalidPath))
}
