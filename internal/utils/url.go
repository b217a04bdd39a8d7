package utils

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/quantmind-br/repoclone/internal/domain"
)

// scpLikeRegex matches scp-style git URLs such as git@github.com:owner/repo.git
var scpLikeRegex = regexp.MustCompile(`^(?:[\w.-]+@)?[\w.-]+:[^/\\][^:]*$`)

// supportedSchemes are URL schemes accepted as clone sources
var supportedSchemes = map[string]bool{
	"http":    true,
	"https":   true,
	"ssh":     true,
	"git":     true,
	"file":    true,
	"git+ssh": true,
}

// IsSCPLikeURL checks if a source uses the scp-like user@host:path syntax
func IsSCPLikeURL(rawURL string) bool {
	if strings.Contains(rawURL, "://") {
		return false
	}
	return scpLikeRegex.MatchString(rawURL)
}

// IsGitURL checks if a URL looks like a remote git repository URL
func IsGitURL(rawURL string) bool {
	if IsSCPLikeURL(rawURL) {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return supportedSchemes[strings.ToLower(u.Scheme)] && (u.Host != "" || u.Scheme == "file")
}

// ValidateSource checks a clone source. Remote URLs and local paths are accepted.
func ValidateSource(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return domain.NewValidationError("url", "must not be empty")
	}
	if strings.Contains(trimmed, "://") && !IsGitURL(trimmed) {
		return domain.NewValidationError("url", "unsupported scheme in "+trimmed)
	}
	return nil
}

// RepoNameFromURL derives the default checkout directory the way git does:
// the last path component without a trailing .git suffix.
//
// Examples:
//   - https://github.com/owner/repo.git -> repo
//   - git@github.com:owner/repo.git -> repo
//   - /srv/git/project/ -> project
func RepoNameFromURL(rawURL string) string {
	s := strings.TrimSpace(rawURL)

	if IsSCPLikeURL(s) {
		s = s[strings.Index(s, ":")+1:]
	} else if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		s = u.Path
		if s == "" || s == "/" {
			s = u.Host
		}
	}

	s = strings.TrimRight(strings.ReplaceAll(s, "\\", "/"), "/")
	s = strings.TrimSuffix(s, "/.git")
	name := strings.TrimSuffix(path.Base(s), ".git")

	name = sanitizeForDirName(name)
	if name == "" || name == "." {
		return "repo"
	}
	return name
}

// sanitizeForDirName removes characters that are not safe for directory names
func sanitizeForDirName(s string) string {
	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			result.WriteRune(r)
		}
	}
	return strings.Trim(result.String(), ".")
}
