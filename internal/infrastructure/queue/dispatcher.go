package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shs/account-service/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// SessionRevoker revokes every session bound to an account.
type SessionRevoker interface {
	RevokeAll(ctx context.Context, accountID string) (int, error)
}

// Dispatcher purges the sessions of deleted accounts on a fixed set of
// workers. Account ids are sharded with consistent hashing so purges for the
// same account never run concurrently.
type Dispatcher struct {
	workers []chan string
	revoker SessionRevoker
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, revoker SessionRevoker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		revoker: revoker,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue schedules a purge for accountID. It never blocks: when the shard is
// full the purge is dropped and the stale sessions are rejected at
// authentication time instead.
func (d *Dispatcher) Enqueue(accountID string) {
	select {
	case d.workers[d.shardIndex(accountID)] <- accountID:
	default:
		metrics.SessionPurgesTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("account_id", accountID).Msg("session purge queue full, dropping")
	}
}

// shardIndex maps an account id deterministically to a worker index.
func (d *Dispatcher) shardIndex(accountID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(accountID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case accountID := <-ch:
			n, err := d.revoker.RevokeAll(ctx, accountID)
			if err != nil {
				metrics.SessionPurgesTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("account_id", accountID).
					Int("worker_id", id).
					Msg("session purge failed")
				continue
			}
			metrics.SessionPurgesTotal.WithLabelValues("ok").Inc()
			metrics.SessionsRevokedTotal.WithLabelValues("account_deleted").Add(float64(n))
			d.log.Debug().
				Str("account_id", accountID).
				Int("worker_id", id).
				Int("revoked", n).
				Msg("sessions purged")
		}
	}
}
