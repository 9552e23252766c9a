package customer

import (
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDSource produces unique record identifiers.
type IDSource interface {
	NewID() string
}

// IDGenerator produces random UUIDs, falling back to a timestamp plus random
// hex fragment when the random UUID source fails. It never fails.
type IDGenerator struct {
	random func() (uuid.UUID, error)
	now    func() time.Time
	log    *slog.Logger
}

// NewIDGenerator creates an IDGenerator backed by uuid.NewRandom.
func NewIDGenerator(log *slog.Logger) *IDGenerator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &IDGenerator{random: uuid.NewRandom, now: time.Now, log: log}
}

// NewID returns a fresh identifier.
func (g *IDGenerator) NewID() string {
	id, err := g.random()
	if err == nil {
		return id.String()
	}
	g.log.Debug("uuid source unavailable, using fallback id", "error", err)
	return fallbackID(g.now())
}

// fallbackID formats "id_<unix millis>_<hex fragment>".
func fallbackID(now time.Time) string {
	return "id_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + strconv.FormatUint(rand.Uint64(), 16)
}
