// Package auth provides role-keyed dispatch to principal sources. Each role
// (admin, student) registers one Source; callers resolve the source for a
// session's role instead of branching on role strings throughout the flow.
package auth

import (
	"context"

	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
)

// Source authenticates and resolves principals for a single role.
type Source interface {
	// Authenticate verifies the credential pair and returns the principal.
	// All failure modes (unknown identifier, bad secret, inactive account)
	// must collapse into apperrors.ErrInvalidCredentials so the caller
	// cannot enumerate accounts.
	Authenticate(ctx context.Context, identifier, secret string) (*dto.PrincipalDTO, error)

	// Resolve re-fetches the live principal for a validated session, so role
	// and profile changes are reflected immediately.
	Resolve(ctx context.Context, userID int64) (*dto.PrincipalDTO, error)
}

// Registry maps roles to their principal sources.
type Registry struct {
	sources map[models.UserRole]Source
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[models.UserRole]Source)}
}

// Register binds a role to its source, replacing any previous binding.
func (r *Registry) Register(role models.UserRole, source Source) {
	r.sources[role] = source
}

// Lookup returns the source for a role.
func (r *Registry) Lookup(role models.UserRole) (Source, bool) {
	source, ok := r.sources[role]
	return source, ok
}
