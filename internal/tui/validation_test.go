package tui

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoclone/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid_string", input: "hello", wantErr: false},
		{name: "empty_string", input: "", wantErr: true},
		{name: "whitespace_only", input: "   ", wantErr: true},
		{name: "string_with_spaces", input: "  hello  ", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateSourceURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "https", input: "https://github.com/owner/repo.git", wantErr: false},
		{name: "scp_like", input: "git@github.com:owner/repo.git", wantErr: false},
		{name: "local_path", input: "/srv/git/repo", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "unsupported_scheme", input: "ftp://example.com/repo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStarterOptions(t *testing.T) {
	starters := []domain.Starter{
		{Name: "SwiftUI", URL: "https://github.com/nalexn/clean-architecture-swiftui"},
		{Name: "Go", URL: "https://github.com/golang-standards/project-layout"},
	}

	options := StarterOptions(starters)

	require.Len(t, options, 3)
	assert.Equal(t, "SwiftUI", options[0].Value)
	assert.Equal(t, "Go", options[1].Value)
	assert.Equal(t, customChoice, options[2].Value)
	assert.Contains(t, options[0].Key, "SwiftUI")
}

func TestFindStarter(t *testing.T) {
	starters := []domain.Starter{{Name: "SwiftUI", URL: "u"}}

	s, err := findStarter(starters, "SwiftUI")
	require.NoError(t, err)
	assert.Equal(t, "u", s.URL)

	_, err = findStarter(starters, "Flutter")
	assert.ErrorIs(t, err, domain.ErrUnknownStarter)
}

func TestCustomStarter(t *testing.T) {
	s := CustomStarter("  https://github.com/owner/my-app.git ")
	assert.Equal(t, "my-app", s.Name)
	assert.Equal(t, "https://github.com/owner/my-app.git", s.URL)
}

func TestCheckLine(t *testing.T) {
	assert.Contains(t, CheckLine(StatusOK, "libgit2", "1.5.0"), "libgit2")
	assert.Contains(t, CheckLine(StatusWarn, "config", "not found"), "not found")
	assert.Contains(t, CheckLine(StatusFail, "write", "denied"), "✗")
}

func TestWrapFormError(t *testing.T) {
	assert.ErrorIs(t, wrapFormError(huh.ErrUserAborted), ErrCancelled)
}
