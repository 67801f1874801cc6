package event

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

func (s *Service) List(ctx context.Context) ([]Event, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, title, date_time, COALESCE(venue,''), COALESCE(location_id,''), status, COALESCE(max_participants,0)
		FROM events
		ORDER BY date_time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.DateTime, &ev.Venue, &ev.LocationID, &ev.Status, &ev.MaxParticipants); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
