package app

import (
	"path/filepath"

	"github.com/quantmind-br/repoclone/internal/domain"
)

// StarterRequest builds the clone request for a starter template. The
// starter is cloned into <dir>/<name>; branch, auth and TLS settings come
// from base.
func StarterRequest(s domain.Starter, dir string, base domain.CloneRequest) domain.CloneRequest {
	req := base
	req.URL = s.URL
	req.Path = filepath.Join(dir, s.Name)
	req.Bare = false
	return req
}
