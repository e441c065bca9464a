package explorer

import (
	"context"
	"database/sql"
	"log/slog"

	"oasis-server/internal/shared/database"
	"oasis-server/internal/shared/errors"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing explorer repository")
	return &Repository{db: db, logger: logger}
}

const explorerColumns = `id, username, email, display_name, avatar_url, role, created_at, updated_at`

func scanExplorer(row interface{ Scan(...any) error }) (*Explorer, error) {
	var e Explorer
	err := row.Scan(
		&e.ID,
		&e.Username,
		&e.Email,
		&e.DisplayName,
		&e.AvatarURL,
		&e.Role,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) List(ctx context.Context) ([]Explorer, error) {
	logger := r.logger.With("component", "explorer_repository", "operation", "list")
	logger.Debug("Retrieving all explorers")

	rows, err := r.db.QueryContext(ctx, `SELECT `+explorerColumns+` FROM explorers ORDER BY created_at DESC`)
	if err != nil {
		logger.Error("Failed to query explorers", "error", err)
		return nil, errors.WrapInternal("failed to query explorers", err)
	}
	defer rows.Close()

	explorers := []Explorer{}
	for rows.Next() {
		e, err := scanExplorer(rows)
		if err != nil {
			logger.Error("Failed to scan explorer row", "error", err)
			return nil, errors.WrapInternal("failed to scan explorer", err)
		}
		explorers = append(explorers, *e)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, errors.WrapInternal("error iterating explorers", err)
	}

	logger.Debug("Explorers retrieved successfully", "count", len(explorers))
	return explorers, nil
}

func (r *Repository) Create(ctx context.Context, username, email, displayName string, avatarURL *string, role Role) (*Explorer, error) {
	logger := r.logger.With(
		"component", "explorer_repository",
		"operation", "create",
		"username", username,
		"email", email,
	)
	logger.Info("Creating new explorer")

	query := `
		INSERT INTO explorers (username, email, display_name, avatar_url, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + explorerColumns

	e, err := scanExplorer(r.db.QueryRowContext(ctx, query, username, email, displayName, avatarURL, role))
	if err != nil {
		logger.Error("Failed to create explorer", "error", err)
		return nil, errors.WrapInternal("failed to create explorer", err)
	}

	logger.Info("Explorer created successfully", "explorer_id", e.ID)
	return e, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Explorer, error) {
	e, err := scanExplorer(r.db.QueryRowContext(ctx, `SELECT `+explorerColumns+` FROM explorers WHERE email = $1`, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("no explorer with email %s", email)
		}
		return nil, errors.WrapInternal("failed to find explorer by email", err)
	}
	return e, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Explorer, error) {
	e, err := scanExplorer(r.db.QueryRowContext(ctx, `SELECT `+explorerColumns+` FROM explorers WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("explorer %d not found", id)
		}
		return nil, errors.WrapInternal("failed to get explorer", err)
	}
	return e, nil
}

func (r *Repository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM explorers WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, errors.WrapInternal("failed to check username", err)
	}
	return exists, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int, role Role) error {
	result, err := r.db.ExecContext(ctx, `UPDATE explorers SET role = $2, updated_at = NOW() WHERE id = $1`, id, role)
	if err != nil {
		return errors.WrapInternal("failed to update explorer role", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to get rows affected", err)
	}
	if n == 0 {
		return errors.NotFoundf("explorer %d not found", id)
	}
	return nil
}
