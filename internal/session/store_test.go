package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"doctor-booking-server/internal/booking"
	"doctor-booking-server/internal/models"
)

var loc = models.LocationDescriptor{Area: "Bandra", District: "Mumbai Suburban", State: "Maharashtra", Country: "India"}

func TestStore_OpenGet(t *testing.T) {
	s, err := NewStore(10, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess := s.Open(loc, models.Doctor{ID: "d1", Fee: 700})
	got, err := s.Get(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sess {
		t.Error("expected the same session back")
	}
	if got.Form.Step() != booking.StepContact {
		t.Errorf("expected a fresh form, got step %s", got.Form.Step())
	}
	if got.Form.Doctor().ID != "d1" {
		t.Errorf("expected doctor d1, got %s", got.Form.Doctor().ID)
	}

	s.Close(sess.ID)
	if _, err := s.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after close, got %v", err)
	}
}

func TestStore_Unknown(t *testing.T) {
	s, _ := NewStore(10, zerolog.Nop())
	if _, err := s.Get(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Eviction(t *testing.T) {
	s, _ := NewStore(2, zerolog.Nop())
	first := s.Open(loc, models.Doctor{})
	second := s.Open(loc, models.Doctor{})

	// touch first so second becomes least recently used
	if _, err := s.Get(first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Open(loc, models.Doctor{})

	if s.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", s.Len())
	}
	if _, err := s.Get(second.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected second session evicted, got %v", err)
	}
	if _, err := s.Get(first.ID); err != nil {
		t.Errorf("expected first session kept, got %v", err)
	}
}

func TestStore_InvalidSize(t *testing.T) {
	if _, err := NewStore(0, zerolog.Nop()); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestSession_DoSerializes(t *testing.T) {
	s, _ := NewStore(1, zerolog.Nop())
	sess := s.Open(loc, models.Doctor{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sess.Do(func(f *booking.Form) error {
				return f.Set(models.FieldName, f.Draft().Name+"a")
			})
		}()
	}
	wg.Wait()

	if got := len(sess.Form.Draft().Name); got != 50 {
		t.Errorf("expected 50 edits, got %d", got)
	}
}
