package auth

import (
	"context"
	"database/sql"
	"errors"

	"oasis-server/internal/shared/database"
	apperrors "oasis-server/internal/shared/errors"
)

// Repository keeps provider links in explorer_auth_providers.
type Repository struct {
	db database.Executor
}

func NewRepository(db database.Executor) *Repository {
	return &Repository{db: db}
}

// SaveLink stores link and returns the explorer that owns the identity. When
// the identity is already linked the existing owner wins and only the
// provider email is refreshed.
func (r *Repository) SaveLink(ctx context.Context, link Link) (int, error) {
	var email sql.NullString
	if link.ProviderEmail != "" {
		email = sql.NullString{String: link.ProviderEmail, Valid: true}
	}

	var owner int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO explorer_auth_providers (explorer_id, provider, provider_user_id, provider_email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider, provider_user_id)
		DO UPDATE SET provider_email = EXCLUDED.provider_email
		RETURNING explorer_id`,
		link.ExplorerID, link.Provider, link.ProviderUserID, email,
	).Scan(&owner)
	if err != nil {
		return 0, apperrors.WrapInternal("failed to save provider link", err)
	}
	return owner, nil
}

// LinkedExplorer returns the explorer linked to a provider identity.
func (r *Repository) LinkedExplorer(ctx context.Context, provider, providerUserID string) (int, error) {
	var explorerID int
	err := r.db.QueryRowContext(ctx,
		`SELECT explorer_id FROM explorer_auth_providers WHERE provider = $1 AND provider_user_id = $2`,
		provider, providerUserID,
	).Scan(&explorerID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, apperrors.NotFoundf("no explorer linked to %s identity", provider)
	case err != nil:
		return 0, apperrors.WrapInternal("failed to look up provider link", err)
	}
	return explorerID, nil
}
