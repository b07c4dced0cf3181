package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rescache/internal/core/domain"
)

func TestResolveFileURI(t *testing.T) {
	root := filepath.FromSlash("/work/game")
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "workspace scheme",
			uri:      "ws://textures/test_bitmap0.png",
			expected: filepath.Join(root, "textures", "test_bitmap0.png"),
		},
		{
			name:     "relative path",
			uri:      "test_bitmap0.png",
			expected: filepath.Join(root, "test_bitmap0.png"),
		},
		{
			name:     "absolute path",
			uri:      filepath.FromSlash("/assets/../assets/a.png"),
			expected: filepath.FromSlash("/assets/a.png"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ResolveFileURI(root, tt.uri))
		})
	}
}
