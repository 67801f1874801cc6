package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/russelescultura/sk-barangay-sub000/internal/stream"
)

func TestDeviceLocateFlow(t *testing.T) {
	tr := New(nil)

	opts := tr.BeginLocate("s-1")
	if !opts.EnableHighAccuracy || opts.TimeoutMs != 10000 || opts.MaximumAgeMs != 60000 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if state, _, _ := tr.Current("s-1"); state != StateLocating {
		t.Fatalf("expected locating state")
	}

	fix := tr.ReportFix("s-1", 14.6, 121.0, 12.5)
	if fix.Accuracy == nil || *fix.Accuracy != 12.5 {
		t.Fatalf("expected sensor accuracy")
	}
	state, held, _ := tr.Current("s-1")
	if state != StateLocated || held == nil || held.Lat != 14.6 {
		t.Fatalf("unexpected state after fix")
	}
}

func TestGeolocationErrorMessages(t *testing.T) {
	tr := New(nil)

	permission := tr.ReportError("s-1", CodePermissionDenied)
	unavailable := tr.ReportError("s-1", CodePositionUnavailable)
	timeout := tr.ReportError("s-1", CodeTimeout)
	generic := tr.ReportError("s-1", 99)

	messages := map[string]struct{}{permission: {}, unavailable: {}, timeout: {}, generic: {}}
	if len(messages) != 4 {
		t.Fatalf("expected four distinct messages")
	}
	if state, _, msg := tr.Current("s-1"); state != StateError || msg != generic {
		t.Fatalf("expected error state with last message")
	}
}

func TestManualSelectFlow(t *testing.T) {
	tr := New(nil)

	tr.BeginSelect("s-1")
	if state, _, _ := tr.Current("s-1"); state != StateSelecting {
		t.Fatalf("expected selecting state")
	}

	fix, accepted := tr.Click("s-1", 14.61, 121.03)
	if !accepted {
		t.Fatalf("expected click to be accepted")
	}
	if fix.Accuracy != nil {
		t.Fatalf("manual fix must have no accuracy")
	}
	if fix.Lat != 14.61 || fix.Lng != 121.03 {
		t.Fatalf("expected exact clicked coordinate")
	}

	// second click: idempotent exit, no further effect
	again, accepted := tr.Click("s-1", 15.0, 122.0)
	if accepted {
		t.Fatalf("second click must not be accepted")
	}
	if again.Lat != 14.61 || again.Lng != 121.03 {
		t.Fatalf("second click changed the fix")
	}
}

func TestModesReplaceEachOther(t *testing.T) {
	tr := New(nil)

	tr.BeginLocate("s-1")
	tr.ReportFix("s-1", 14.6, 121.0, 8)

	tr.BeginSelect("s-1")
	fix, _ := tr.Click("s-1", 14.7, 121.1)
	if fix.Accuracy != nil {
		t.Fatalf("manual fix kept stale accuracy")
	}
	_, held, _ := tr.Current("s-1")
	if held.Lat != 14.7 {
		t.Fatalf("manual fix did not replace device fix")
	}

	// device mode replaces manual result in turn
	tr.BeginLocate("s-1")
	tr.ReportFix("s-1", 14.8, 121.2, 5)
	_, held, _ = tr.Current("s-1")
	if held.Lat != 14.8 || held.Accuracy == nil {
		t.Fatalf("device fix did not replace manual fix")
	}
}

func TestCancelSelect(t *testing.T) {
	tr := New(nil)

	tr.BeginSelect("s-1")
	tr.CancelSelect("s-1")
	if state, _, _ := tr.Current("s-1"); state != StateIdle {
		t.Fatalf("expected idle after cancel with no fix")
	}

	tr.BeginLocate("s-2")
	tr.ReportFix("s-2", 14.6, 121.0, 3)
	tr.BeginSelect("s-2")
	tr.CancelSelect("s-2")
	if state, held, _ := tr.Current("s-2"); state != StateLocated || held == nil {
		t.Fatalf("cancel dropped the prior fix")
	}
}

func TestWatchBroadcastsFixes(t *testing.T) {
	hub := stream.NewHub(nil)
	tr := New(hub)

	client := hub.Register("s-w")
	defer hub.Unregister(client)

	stop := tr.StartWatch("s-w")
	defer stop()

	tr.ReportFix("s-w", 14.6, 121.0, 7)

	select {
	case msg := <-client.Send:
		var fix Fix
		if err := json.Unmarshal(msg, &fix); err != nil || fix.Lat != 14.6 {
			t.Fatalf("unexpected broadcast: %s", msg)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for watch broadcast")
	}
}

func TestWatchStopEndsBroadcast(t *testing.T) {
	hub := stream.NewHub(nil)
	tr := New(hub)

	client := hub.Register("s-w2")
	defer hub.Unregister(client)

	stop := tr.StartWatch("s-w2")
	if !tr.Watching("s-w2") {
		t.Fatalf("expected active watch")
	}
	stop()
	stop() // idempotent
	if tr.Watching("s-w2") {
		t.Fatalf("expected watch stopped")
	}

	tr.ReportFix("s-w2", 14.6, 121.0, 7)
	select {
	case <-client.Send:
		t.Fatalf("fix broadcast after stop")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCloseDropsSession(t *testing.T) {
	tr := New(nil)
	tr.ReportFix("s-c", 14.6, 121.0, 4)
	tr.Close("s-c")
	if state, fix, _ := tr.Current("s-c"); state != StateIdle || fix != nil {
		t.Fatalf("expected fresh session after close")
	}
}
