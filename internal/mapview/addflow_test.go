package mapview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/russelescultura/sk-barangay-sub000/internal/location"

	"github.com/pashagolub/pgxmock/v3"
)

func TestAddFlowTransitions(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Create()

	// the form cannot open before a coordinate is captured
	if err := s.OpenForm(); !errors.Is(err, ErrFlowState) {
		t.Fatalf("expected flow-state error")
	}

	s.RightClick(14.6051, 121.0325)
	if s.Flow() != FlowPositioned {
		t.Fatalf("right click must position the temp marker")
	}

	if err := s.OpenForm(); err != nil {
		t.Fatalf("open form: %v", err)
	}
	if s.Flow() != FlowFormOpen {
		t.Fatalf("expected form-open state")
	}

	s.CancelForm()
	if s.Flow() != FlowIdle {
		t.Fatalf("cancel must return to idle")
	}
}

func TestSubmitFormOutsideFlow(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Create()

	if _, _, err := m.SubmitForm(context.Background(), s, FormInput{}); !errors.Is(err, ErrFlowState) {
		t.Fatalf("expected flow-state error")
	}
}

func TestSubmitFormInvalidStaysOpen(t *testing.T) {
	m, mock := newTestManager(t)
	s := m.Create()

	s.RightClick(14.6051, 121.0325)
	s.OpenForm()

	_, problems, err := m.SubmitForm(context.Background(), s, FormInput{Name: "Ab", Type: "CASTLE"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(problems) != 2 {
		t.Fatalf("expected both violations reported, got %v", problems)
	}
	if s.Flow() != FlowFormOpen {
		t.Fatalf("invalid submission must keep the form open")
	}
	// no store call happened
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestSubmitFormCreatesAtCapturedCoordinate(t *testing.T) {
	m, mock := newTestManager(t)
	s := m.Create()

	s.RightClick(14.6051, 121.0325)
	s.OpenForm()

	mock.ExpectQuery(`INSERT INTO locations`).
		WithArgs(pgxmock.AnyArg(), "Basketball Court", "", 121.0325, 14.6051, location.TypeSports, "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	created, problems, err := m.SubmitForm(context.Background(), s, FormInput{
		Name: "Basketball Court",
		Type: location.TypeSports,
	})
	if err != nil || len(problems) > 0 {
		t.Fatalf("submit: %v %v", err, problems)
	}
	if created.Lat != 14.6051 || created.Lng != 121.0325 {
		t.Fatalf("location must use the captured coordinate: %+v", created)
	}
	if s.Flow() != FlowIdle {
		t.Fatalf("successful submission must return to idle")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitFormStoreFailureReopensForm(t *testing.T) {
	m, mock := newTestManager(t)
	s := m.Create()

	s.RightClick(14.6051, 121.0325)
	s.OpenForm()

	mock.ExpectQuery(`INSERT INTO locations`).
		WithArgs(pgxmock.AnyArg(), "Basketball Court", "", 121.0325, 14.6051, location.TypeSports, "").
		WillReturnError(errMapview)

	_, _, err := m.SubmitForm(context.Background(), s, FormInput{
		Name: "Basketball Court",
		Type: location.TypeSports,
	})
	if !errors.Is(err, errMapview) {
		t.Fatalf("expected store error, got %v", err)
	}
	if s.Flow() != FlowFormOpen {
		t.Fatalf("store failure must reopen the form")
	}
}
