package tracker

import (
	"encoding/json"
	"sync"

	"github.com/russelescultura/sk-barangay-sub000/internal/stream"
)

// Tracker holds per-session geolocation state: the client reports its
// transitions (device fix, error, manual map click) and the tracker
// enforces the state machine. Only one fix is held per session; invoking
// either mode replaces the previous result.
type Tracker struct {
	hub *stream.Hub

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	state    State
	fix      *Fix
	message  string
	watching bool
}

func New(hub *stream.Hub) *Tracker {
	return &Tracker{hub: hub, sessions: map[string]*session{}}
}

func (t *Tracker) get(id string) *session {
	s, ok := t.sessions[id]
	if !ok {
		s = &session{state: StateIdle}
		t.sessions[id] = s
	}
	return s
}

// BeginLocate puts the session in the locating state and returns the
// device options the client must request the fix with.
func (t *Tracker) BeginLocate(id string) Options {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(id)
	s.state = StateLocating
	return DeviceOptions()
}

// ReportFix stores a device-sensor fix and moves the session to located.
// When a watch is active the fix is also broadcast to stream listeners.
func (t *Tracker) ReportFix(id string, lat, lng, accuracy float64) Fix {
	t.mu.Lock()
	s := t.get(id)
	acc := accuracy
	fix := Fix{Lat: lat, Lng: lng, Accuracy: &acc}
	s.fix = &fix
	s.state = StateLocated
	s.message = ""
	watching := s.watching
	t.mu.Unlock()

	if watching && t.hub != nil {
		payload, _ := json.Marshal(fix)
		t.hub.Broadcast(id, payload)
	}
	return fix
}

// ReportError records a failed device fix and returns the user-facing
// message for the reported code.
func (t *Tracker) ReportError(id string, code int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(id)
	s.state = StateError
	s.message = ErrorMessage(code)
	return s.message
}

// BeginSelect enters manual selection: the next map click becomes the
// user location.
func (t *Tracker) BeginSelect(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(id)
	s.state = StateSelecting
}

// Click resolves a manual selection. Outside the selecting state it does
// nothing and reports false, which makes a second click an idempotent
// no-op. Manual fixes carry no accuracy.
func (t *Tracker) Click(id string, lat, lng float64) (Fix, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(id)
	if s.state != StateSelecting {
		if s.fix != nil {
			return *s.fix, false
		}
		return Fix{}, false
	}
	fix := Fix{Lat: lat, Lng: lng, Accuracy: nil}
	s.fix = &fix
	s.state = StateLocated
	s.message = ""
	return fix, true
}

// CancelSelect leaves the selecting state without changing the held fix.
func (t *Tracker) CancelSelect(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(id)
	if s.state != StateSelecting {
		return
	}
	if s.fix != nil {
		s.state = StateLocated
	} else {
		s.state = StateIdle
	}
}

// Current returns the session's state, held fix (nil when none), and
// error message (empty when none).
func (t *Tracker) Current(id string) (State, *Fix, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(id)
	return s.state, s.fix, s.message
}

// StartWatch begins continuous position streaming for the session and
// returns the stop function. The caller owns the returned lifetime and
// must invoke it on teardown; Close also stops it as a backstop.
func (t *Tracker) StartWatch(id string) func() {
	t.mu.Lock()
	s := t.get(id)
	s.watching = true
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if s, ok := t.sessions[id]; ok {
				s.watching = false
			}
		})
	}
}

// Watching reports whether the session has an active watch.
func (t *Tracker) Watching(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[id]
	return ok && s.watching
}

// Close drops the session's tracker state, ending any watch.
func (t *Tracker) Close(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, id)
}
