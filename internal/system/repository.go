package system

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"oasis-server/internal/planet"
	"oasis-server/internal/shared/database"
	"oasis-server/internal/shared/errors"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing system repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

// Save stores the system and its planets in one transaction.
func (r *Repository) Save(ctx context.Context, explorerID int, view View) (*Record, error) {
	logger := r.logger.With(
		"component", "system_repository",
		"operation", "save",
		"explorer_id", explorerID,
		"system", view.Name,
		"planets", len(view.Planets),
	)
	logger.Debug("Saving system")

	var record *Record
	err := r.db.WithTx(ctx, func(tx *database.Tx) error {
		var err error
		record, err = r.createSystem(ctx, explorerID, view, tx)
		if err != nil {
			return err
		}

		for i, p := range view.Planets {
			if err := r.createPlanet(ctx, record.ID, i, p, tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to save system", "error", err)
		return nil, errors.WrapInternal("failed to save system", err)
	}

	record.Planets = view.Planets
	record.PlanetCount = len(view.Planets)

	logger.Info("System saved", "system_id", record.PublicID)
	return record, nil
}

func (r *Repository) createSystem(ctx context.Context, explorerID int, view View, tx *database.Tx) (*Record, error) {
	exec := r.getExecutor(tx)

	query := `
		INSERT INTO star_systems (
			public_id, explorer_id, name, seed,
			star_code, star_class_name, star_subtype, star_description, star_rarity,
			star_ringed, star_scoopable, star_boostable,
			star_age_myr, star_solar_masses, star_solar_radius, star_surface_temp_k,
			star_orbital_period_days, star_rotational_period_days
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at
	`

	s := view.Star
	record := &Record{
		PublicID:   uuid.New(),
		ExplorerID: explorerID,
		Name:       view.Name,
		Seed:       view.Seed,
		Star:       s,
	}

	err := exec.QueryRowContext(ctx, query,
		record.PublicID, explorerID, view.Name, strconv.FormatUint(view.Seed, 10),
		s.Code, s.ClassName, s.Subtype, s.Description, s.Rarity,
		s.Ringed, s.Scoopable, s.Boostable,
		s.Age, s.SolarMasses, s.SolarRadius, s.SurfaceTemp,
		s.OrbitalPeriod.Days(), s.RotationalPeriod.Days(),
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) createPlanet(ctx context.Context, systemID, index int, p planet.Stats, tx *database.Tx) error {
	exec := r.getExecutor(tx)

	query := `
		INSERT INTO planets (
			system_id, planet_index, name, label, type_name, description, rarity,
			ringed, landable, explorable,
			dist_from_arrival_ls, surface_temp_k, surface_pressure_atm, radius_km,
			earth_masses, gravity_g, orbital_period_days, rotational_period_days
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := exec.ExecContext(ctx, query,
		systemID, index, p.Name, p.Label, p.TypeName, p.Description, p.Rarity,
		p.Ringed, p.Landable, p.Explorable,
		p.DistanceFromArrival, p.SurfaceTemp, p.SurfacePressure, p.Radius,
		p.EarthMasses, p.Gravity, p.OrbitalPeriod.Days(), p.RotationalPeriod.Days(),
	)
	return err
}

const selectSystem = `
	SELECT s.id, s.public_id, s.explorer_id, s.name, s.seed,
		s.star_code, s.star_class_name, s.star_subtype, s.star_description, s.star_rarity,
		s.star_ringed, s.star_scoopable, s.star_boostable,
		s.star_age_myr, s.star_solar_masses, s.star_solar_radius, s.star_surface_temp_k,
		s.star_orbital_period_days, s.star_rotational_period_days,
		(SELECT COUNT(*) FROM planets p WHERE p.system_id = s.id),
		s.created_at
	FROM star_systems s
`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var rec Record
	s := &rec.Star
	err := row.Scan(
		&rec.ID, &rec.PublicID, &rec.ExplorerID, &rec.Name, &rec.Seed,
		&s.Code, &s.ClassName, &s.Subtype, &s.Description, &s.Rarity,
		&s.Ringed, &s.Scoopable, &s.Boostable,
		&s.Age, &s.SolarMasses, &s.SolarRadius, &s.SurfaceTemp,
		&s.OrbitalPeriod, &s.RotationalPeriod,
		&rec.PlanetCount,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Name = rec.Name
	return &rec, nil
}

// List returns saved systems newest first.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Record, error) {
	logger := r.logger.With("component", "system_repository", "operation", "list", "limit", limit, "offset", offset)
	logger.Debug("Listing systems")

	rows, err := r.db.QueryContext(ctx, selectSystem+` ORDER BY s.created_at DESC, s.id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		logger.Error("Failed to query systems", "error", err)
		return nil, errors.WrapInternal("failed to query systems", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			logger.Error("Failed to scan system row", "error", err)
			return nil, errors.WrapInternal("failed to scan system", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, errors.WrapInternal("error iterating systems", err)
	}

	logger.Debug("Systems retrieved", "count", len(records))
	return records, nil
}

// Get returns a saved system with its planets.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	logger := r.logger.With("component", "system_repository", "operation", "get", "system_id", id)

	rec, err := scanRecord(r.db.QueryRowContext(ctx, selectSystem+` WHERE s.public_id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("system %s not found", id)
		}
		logger.Error("Failed to get system", "error", err)
		return nil, errors.WrapInternal("failed to get system", err)
	}

	planets, err := r.planetsFor(ctx, rec.ID)
	if err != nil {
		logger.Error("Failed to get planets", "error", err)
		return nil, errors.WrapInternal("failed to get planets", err)
	}
	rec.Planets = planets

	return rec, nil
}

func (r *Repository) planetsFor(ctx context.Context, systemID int) ([]planet.Stats, error) {
	query := `
		SELECT name, label, type_name, description, rarity,
			ringed, landable, explorable,
			dist_from_arrival_ls, surface_temp_k, surface_pressure_atm, radius_km,
			earth_masses, gravity_g, orbital_period_days, rotational_period_days
		FROM planets
		WHERE system_id = $1
		ORDER BY planet_index
	`

	rows, err := r.db.QueryContext(ctx, query, systemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planets := []planet.Stats{}
	for rows.Next() {
		var p planet.Stats
		err := rows.Scan(
			&p.Name, &p.Label, &p.TypeName, &p.Description, &p.Rarity,
			&p.Ringed, &p.Landable, &p.Explorable,
			&p.DistanceFromArrival, &p.SurfaceTemp, &p.SurfacePressure, &p.Radius,
			&p.EarthMasses, &p.Gravity, &p.OrbitalPeriod, &p.RotationalPeriod,
		)
		if err != nil {
			return nil, err
		}
		planets = append(planets, p)
	}

	return planets, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := r.logger.With("component", "system_repository", "operation", "delete", "system_id", id)

	result, err := r.db.ExecContext(ctx, `DELETE FROM star_systems WHERE public_id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete system", "error", err)
		return errors.WrapInternal("failed to delete system", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.NotFoundf("system %s not found", id)
	}

	logger.Info("System deleted")
	return nil
}
