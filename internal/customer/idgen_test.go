package customer

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIDGenerator_UUID(t *testing.T) {
	g := NewIDGenerator(nil)

	id := g.NewID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewID() = %q, not a UUID: %v", id, err)
	}
	if other := g.NewID(); other == id {
		t.Errorf("NewID() returned %q twice", id)
	}
}

func TestIDGenerator_Fallback(t *testing.T) {
	// Given: a generator whose random UUID source is unavailable
	g := NewIDGenerator(nil)
	g.random = func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") }
	g.now = func() time.Time { return time.UnixMilli(1_700_000_000_123) }

	// When: ids are generated
	a, b := g.NewID(), g.NewID()

	// Then: they use the timestamp fallback and still differ
	pattern := regexp.MustCompile(`^id_1700000000123_[0-9a-f]+$`)
	if !pattern.MatchString(a) {
		t.Errorf("fallback id = %q, want match %s", a, pattern)
	}
	if a == b {
		t.Errorf("fallback ids collide: %q", a)
	}
}
