package route

import (
	"context"
	"sync"
)

// Dispatcher serializes route requests per map session with a
// last-request-wins policy: selecting a new destination while an earlier
// computation is still in flight must not let the stale result win. The
// guard is a monotonically increasing sequence number, not a network
// abort, since the provider chain already awaits sequentially.
type Dispatcher struct {
	planner *Planner

	mu     sync.Mutex
	seq    map[string]uint64
	latest map[string]Info
}

func NewDispatcher(planner *Planner) *Dispatcher {
	return &Dispatcher{
		planner: planner,
		seq:     map[string]uint64{},
		latest:  map[string]Info{},
	}
}

// Request computes a route for the session and publishes it only if no
// newer request was issued meanwhile. The returned Info is the session's
// current route after this request settles, which may belong to a newer
// request.
func (d *Dispatcher) Request(ctx context.Context, sessionID string, start, end Point) Info {
	d.mu.Lock()
	d.seq[sessionID]++
	mySeq := d.seq[sessionID]
	d.mu.Unlock()

	result := d.planner.Plan(ctx, start, end)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seq[sessionID] == mySeq {
		d.latest[sessionID] = result
	}
	return d.latest[sessionID]
}

// Latest returns the most recently published route for the session.
func (d *Dispatcher) Latest(sessionID string) (Info, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	result, ok := d.latest[sessionID]
	return result, ok
}

// Clear drops the session's route state, used when the panel closes or a
// destination is deselected.
func (d *Dispatcher) Clear(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seq, sessionID)
	delete(d.latest, sessionID)
}
