package youth

import (
	"context"
	"errors"

	"github.com/russelescultura/sk-barangay-sub000/internal/db"
)

var ErrNoDatabase = errors.New("database unavailable")

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, full_name, age, sex, status, COALESCE(committee,''),
		       COALESCE(street,''), COALESCE(purok,''),
		       ST_Y(residence::geometry), ST_X(residence::geometry)
		FROM youth_profiles
		ORDER BY full_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Age, &p.Sex, &p.Status, &p.Committee, &p.Street, &p.Purok, &p.Lat, &p.Lng); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Plottable filters to profiles with both coordinates present.
func Plottable(profiles []Profile) []Profile {
	var out []Profile
	for _, p := range profiles {
		if p.Plottable() {
			out = append(out, p)
		}
	}
	return out
}
