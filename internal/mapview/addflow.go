package mapview

import (
	"context"

	"github.com/russelescultura/sk-barangay-sub000/internal/location"
)

// The add-location flow:
//
//	idle -> positioned (right-click captured coordinates, temp marker)
//	     -> form-open
//	     -> submitted valid   -> creating -> idle (list reloaded)
//	     -> submitted invalid -> form-open (with errors)
//	     -> cancelled         -> idle

// RightClick captures the clicked coordinate and shows the temp marker.
func (s *Session) RightClick(lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingLat = lat
	s.pendingLng = lng
	s.flow = FlowPositioned
}

// OpenForm moves from the temp marker to the creation form.
func (s *Session) OpenForm() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != FlowPositioned {
		return ErrFlowState
	}
	s.flow = FlowFormOpen
	return nil
}

// CancelForm abandons the flow and discards the captured coordinate.
func (s *Session) CancelForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow = FlowIdle
	s.pendingLat = 0
	s.pendingLng = 0
}

// Flow returns the current add-location flow state.
func (s *Session) Flow() FlowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow
}

// FormInput is the user-entered part of the creation form; the
// coordinates come from the captured right-click.
type FormInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Image       string `json:"image"`
}

// SubmitForm validates and creates the location at the captured
// coordinate. Validation failures keep the form open and return every
// violated rule; success passes through creating and back to idle with
// the pending UI state cleared.
func (m *Manager) SubmitForm(ctx context.Context, s *Session, input FormInput) (location.Location, []string, error) {
	s.mu.Lock()
	if s.flow != FlowFormOpen {
		s.mu.Unlock()
		return location.Location{}, nil, ErrFlowState
	}
	lat, lng := s.pendingLat, s.pendingLng
	s.mu.Unlock()

	create := location.CreateInput{
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Image:       input.Image,
		Lat:         lat,
		Lng:         lng,
	}
	// invalid submissions never leave the form, and never hit the store
	if problems := create.Validate(); len(problems) > 0 {
		return location.Location{}, problems, nil
	}

	s.mu.Lock()
	s.flow = FlowCreating
	s.mu.Unlock()

	created, _, err := m.locations.Create(ctx, create)
	if err != nil {
		s.mu.Lock()
		s.flow = FlowFormOpen
		s.mu.Unlock()
		return location.Location{}, nil, err
	}

	s.mu.Lock()
	s.flow = FlowIdle
	s.pendingLat = 0
	s.pendingLng = 0
	s.mu.Unlock()
	return created, nil, nil
}
