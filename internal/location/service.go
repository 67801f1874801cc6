package location

import (
	"context"
	"errors"
	"strings"

	"github.com/russelescultura/sk-barangay-sub000/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// List returns every stored location. When the database is unreachable it
// falls back to the seed list so the map is never empty; the second return
// reports that degraded state.
func (s *Service) List(ctx context.Context) ([]Location, bool) {
	if s.db == nil {
		return Seeds(), true
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, name, COALESCE(description,''), ST_Y(point::geometry), ST_X(point::geometry),
		       type, COALESCE(image,''), created_at
		FROM locations
		ORDER BY created_at
	`)
	if err != nil {
		return Seeds(), true
	}
	defer rows.Close()

	var results []Location
	for rows.Next() {
		var loc Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Description, &loc.Lat, &loc.Lng, &loc.Type, &loc.Image, &loc.CreatedAt); err != nil {
			return Seeds(), true
		}
		results = append(results, loc)
	}
	return results, false
}

var ErrNoDatabase = errors.New("database unavailable")

func (s *Service) Get(ctx context.Context, id string) (Location, error) {
	if s.db == nil {
		return Location{}, ErrNoDatabase
	}
	row := s.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(description,''), ST_Y(point::geometry), ST_X(point::geometry),
		       type, COALESCE(image,''), created_at
		FROM locations WHERE id=$1
	`, id)
	var loc Location
	if err := row.Scan(&loc.ID, &loc.Name, &loc.Description, &loc.Lat, &loc.Lng, &loc.Type, &loc.Image, &loc.CreatedAt); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Create validates and inserts a new location. Validation failures come
// back in the first return with a nil error and nothing written.
func (s *Service) Create(ctx context.Context, input CreateInput) (Location, []string, error) {
	if problems := input.Validate(); len(problems) > 0 {
		return Location{}, problems, nil
	}
	if s.db == nil {
		return Location{}, nil, ErrNoDatabase
	}

	loc := Location{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Lat:         input.Lat,
		Lng:         input.Lng,
		Type:        input.Type,
		Image:       input.Image,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO locations (id, name, description, point, type, image)
		VALUES ($1,$2,$3, ST_SetSRID(ST_MakePoint($4,$5), 4326)::geography, $6, $7)
		RETURNING created_at
	`, loc.ID, loc.Name, loc.Description, loc.Lng, loc.Lat, loc.Type, loc.Image)
	if err := row.Scan(&loc.CreatedAt); err != nil {
		return Location{}, nil, err
	}
	return loc, nil, nil
}

// Reposition persists a drag move. The caller has already applied the move
// to its view; a persistence error leaves the marker dirty, not rolled back.
func (s *Service) Reposition(ctx context.Context, id string, lat, lng float64) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	_, err := s.db.Exec(ctx, `
		UPDATE locations
		SET point = ST_SetSRID(ST_MakePoint($2,$3), 4326)::geography
		WHERE id=$1
	`, id, lng, lat)
	return err
}

func (s *Service) Remove(ctx context.Context, id string) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	_, err := s.db.Exec(ctx, `DELETE FROM locations WHERE id=$1`, id)
	return err
}
