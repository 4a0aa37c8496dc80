package services

import (
	"crypto/rand"
	"log"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"

	"coinflip-casino-backend/internal/models"
)

// RandomnessOracle is the contract with the external randomness provider:
// one request id out, one unsigned random value delivered back later
// through the engine's callback, exactly once.
type RandomnessOracle interface {
	RequestRandomness() (requestID string, err error)
}

// Deliverer is the callback surface the oracle resolves into.
type Deliverer interface {
	Deliver(requestID string, randomValue uint64) (*models.Bet, error)
}

// SimOracle stands in for the real coordinator: it hands out uuid request
// ids and delivers a crypto/rand value after a short delay, compressing the
// unbounded request/response gap of the real thing into something a dev
// environment can watch.
type SimOracle struct {
	delay time.Duration

	mu        sync.Mutex
	deliverer Deliverer
}

func NewSimOracle(delay time.Duration) *SimOracle {
	return &SimOracle{delay: delay}
}

// Bind attaches the callback target. The engine and oracle reference each
// other, so whichever is built second gets bound here.
func (o *SimOracle) Bind(d Deliverer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deliverer = d
}

func (o *SimOracle) RequestRandomness() (string, error) {
	requestID := uuid.New().String()

	go func() {
		time.Sleep(o.delay)

		o.mu.Lock()
		d := o.deliverer
		o.mu.Unlock()
		if d == nil {
			log.Printf("sim oracle: no deliverer bound, dropping %s", requestID)
			return
		}

		n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
		if err != nil {
			log.Printf("sim oracle: randomness failed for %s: %v", requestID, err)
			return
		}

		if _, err := d.Deliver(requestID, n.Uint64()); err != nil {
			// A stale or foreign callback is dropped, never retried.
			log.Printf("sim oracle: delivery for %s dropped: %v", requestID, err)
		}
	}()

	return requestID, nil
}
