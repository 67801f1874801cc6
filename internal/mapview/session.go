package mapview

import (
	"context"
	"errors"
	"sync"

	"github.com/russelescultura/sk-barangay-sub000/internal/event"
	"github.com/russelescultura/sk-barangay-sub000/internal/location"
	"github.com/russelescultura/sk-barangay-sub000/internal/youth"

	"github.com/google/uuid"
)

// FlowState tracks the add-location flow.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowPositioned FlowState = "positioned"
	FlowFormOpen   FlowState = "form-open"
	FlowCreating   FlowState = "creating"
)

var (
	ErrSessionNotFound = errors.New("map session not found")
	ErrEditModeOff     = errors.New("edit mode is off")
	ErrNoActiveDrag    = errors.New("no drag in progress")
	ErrNoPendingDelete = errors.New("no delete awaiting confirmation")
	ErrFlowState       = errors.New("operation not valid in current flow state")
)

// Session is one client's map: viewport, edit mode, drag state, the
// pending delete confirmation, and the add-location flow.
type Session struct {
	ID string

	mu            sync.Mutex
	viewport      Viewport
	editMode      bool
	dragging      string
	pendingDelete string
	flow          FlowState
	pendingLat    float64
	pendingLng    float64
	dirty         map[string]bool
}

// Manager owns map sessions and wires their interactions to the stores.
type Manager struct {
	locations *location.Service
	events    *event.Service
	youth     *youth.Service

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(locations *location.Service, events *event.Service, youthSvc *youth.Service) *Manager {
	return &Manager{
		locations: locations,
		events:    events,
		youth:     youthSvc,
		sessions:  map[string]*Session{},
	}
}

// Create opens a session centered on the barangay.
func (m *Manager) Create() *Session {
	s := &Session{
		ID: uuid.NewString(),
		viewport: Viewport{
			CenterLat: 14.6043,
			CenterLng: 121.0312,
			Zoom:      16,
			Width:     1024,
			Height:    768,
		},
		flow:  FlowIdle,
		dirty: map[string]bool{},
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// SetEditMode toggles the global edit switch. Turning it off cancels any
// drag and hides the trash zone regardless of per-marker state.
func (s *Session) SetEditMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = on
	if !on {
		s.dragging = ""
		s.pendingDelete = ""
	}
}

func (s *Session) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}

// TrashZoneVisible reports whether the drop target should render: only
// during an active drag with edit mode on.
func (s *Session) TrashZoneVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode && s.dragging != ""
}

// StartDrag begins dragging a marker and reveals the trash zone.
func (s *Session) StartDrag(locationID string) (TrashZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editMode {
		return TrashZone{}, ErrEditModeOff
	}
	s.dragging = locationID
	return trashZoneFor(s.viewport), nil
}

// DragResult reports how a drag ended.
type DragResult struct {
	LocationID string  `json:"location_id"`
	Deleted    bool    `json:"delete_pending"`
	Lat        float64 `json:"lat,omitempty"`
	Lng        float64 `json:"lng,omitempty"`
	Dirty      bool    `json:"dirty,omitempty"`
}

// EndDrag resolves a drop. A drop inside the trash zone becomes a delete
// awaiting confirmation, never an immediate delete. Any other drop is a
// reposition: the move is kept locally even when persistence fails, with
// the marker flagged dirty instead of rolled back.
func (m *Manager) EndDrag(ctx context.Context, s *Session, dropLat, dropLng float64) (DragResult, error) {
	s.mu.Lock()
	locationID := s.dragging
	if locationID == "" {
		s.mu.Unlock()
		return DragResult{}, ErrNoActiveDrag
	}
	s.dragging = ""

	x, y := s.viewport.Project(dropLat, dropLng)
	if trashZoneFor(s.viewport).Contains(x, y) {
		s.pendingDelete = locationID
		s.mu.Unlock()
		return DragResult{LocationID: locationID, Deleted: true}, nil
	}
	s.mu.Unlock()

	result := DragResult{LocationID: locationID, Lat: dropLat, Lng: dropLng}
	if err := m.locations.Reposition(ctx, locationID, dropLat, dropLng); err != nil {
		result.Dirty = true
		s.mu.Lock()
		s.dirty[locationID] = true
		s.mu.Unlock()
	}
	return result, nil
}

// ConfirmDelete performs the delete that a trash drop queued up.
func (m *Manager) ConfirmDelete(ctx context.Context, s *Session) error {
	s.mu.Lock()
	locationID := s.pendingDelete
	if locationID == "" {
		s.mu.Unlock()
		return ErrNoPendingDelete
	}
	s.mu.Unlock()

	if err := m.locations.Remove(ctx, locationID); err != nil {
		return err
	}
	s.mu.Lock()
	s.pendingDelete = ""
	delete(s.dirty, locationID)
	s.mu.Unlock()
	return nil
}

// CancelDelete keeps the marker; the drag is already over so it simply
// clears the pending state.
func (s *Session) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = ""
}

// PendingDelete returns the location awaiting confirmation, if any.
func (s *Session) PendingDelete() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingDelete
}

// Dirty reports whether a marker's position diverged from the server.
func (s *Session) Dirty(locationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty[locationID]
}
