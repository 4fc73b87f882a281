package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		opts        []Option
		expected    Config
		expectError string
	}{
		{
			name:     "Defaults",
			expected: Config{Order: OrderDepth, Format: FormatText, Check: true},
		},
		{
			name:     "File",
			path:     "testdata/breadth.yaml",
			expected: Config{Order: OrderBreadth, Format: FormatYAML, Check: false},
		},
		{
			name:     "Options Override File",
			path:     "testdata/breadth.yaml",
			opts:     []Option{WithOrder(OrderDepth), WithCheck(true)},
			expected: Config{Order: OrderDepth, Format: FormatYAML, Check: true},
		},
		{
			name:     "Existing OpenAPI File",
			opts:     []Option{WithOpenAPI("testdata/breadth.yaml")},
			expected: Config{Order: OrderDepth, Format: FormatText, Check: true, OpenAPI: "testdata/breadth.yaml"},
		},
		{
			name:        "Invalid Order",
			path:        "testdata/invalid.yaml",
			expectError: `config order: invalid value "sideways" (oneof)`,
		},
		{
			name:        "Invalid Format Option",
			opts:        []Option{WithFormat("xml")},
			expectError: `config format: invalid value "xml" (oneof)`,
		},
		{
			name:        "Empty Order",
			opts:        []Option{WithOrder("")},
			expectError: "config order",
		},
		{
			name:        "Missing OpenAPI File",
			opts:        []Option{WithOpenAPI(filepath.Join("testdata", "nope.yaml"))},
			expectError: "config openapi",
		},
		{
			name:        "Missing Config File",
			path:        "testdata/absent.yaml",
			expectError: "read config",
		},
		{
			name:        "Malformed Config File",
			path:        "testdata/malformed.yaml",
			expectError: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(tt.path, tt.opts...)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestLoad_ReportsEveryField(t *testing.T) {
	_, err := Load("", WithOrder("up"), WithFormat("xml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "config order")
	assert.ErrorContains(t, err, "config format")
}
