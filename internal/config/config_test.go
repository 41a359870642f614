package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSearchRequest(t *testing.T) {
	req := DefaultSearchRequest()

	assert.Equal(t, ColorAuto, req.Color)
	assert.False(t, req.IgnoreCase)
	assert.False(t, req.LineNumbers)
	assert.False(t, req.Recursive)
	assert.False(t, req.CountOnly)
	assert.False(t, req.FilesWithMatches)
	assert.Empty(t, req.Include)
	assert.Empty(t, req.ExcludeDirs)
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"ALWAYS", ColorAlways, false},
		{"  never ", ColorNever, false},
		{"", ColorAuto, true},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid color mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorModeString(t *testing.T) {
	assert.Equal(t, "auto", ColorAuto.String())
	assert.Equal(t, "always", ColorAlways.String())
	assert.Equal(t, "never", ColorNever.String())
	assert.Equal(t, "unknown", ColorMode(42).String())
}

func TestSearchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *SearchRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			modify: func(r *SearchRequest) {},
		},
		{
			name:   "empty pattern is allowed",
			modify: func(r *SearchRequest) { r.Pattern = "" },
		},
		{
			name:    "empty path",
			modify:  func(r *SearchRequest) { r.Path = "" },
			wantErr: "path cannot be empty",
		},
		{
			name:    "bad color mode",
			modify:  func(r *SearchRequest) { r.Color = ColorMode(9) },
			wantErr: "invalid color mode",
		},
		{
			name:    "blank include glob",
			modify:  func(r *SearchRequest) { r.Include = []string{"*.go", " "} },
			wantErr: "include glob cannot be empty",
		},
		{
			name:    "blank exclude-dir glob",
			modify:  func(r *SearchRequest) { r.ExcludeDirs = []string{""} },
			wantErr: "exclude-dir glob cannot be empty",
		},
		{
			name:    "invalid UTF-8 pattern",
			modify:  func(r *SearchRequest) { r.Pattern = "a\xffb" },
			wantErr: "not valid UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := DefaultSearchRequest()
			req.Pattern = "foo"
			req.Path = "testdata"
			tt.modify(req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
