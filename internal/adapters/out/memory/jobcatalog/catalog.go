// Package jobcatalog provides the in-memory implementation of the JobCatalog
// port. The engine deliberately has no durable storage; the catalog is the
// request-scoped pool of offers the orchestration layer keeps warm.
package jobcatalog

import (
	"context"
	"sync"
	"time"

	"jobassist/internal/core/domain/model/job"
	"jobassist/internal/core/domain/model/kernel"
	"jobassist/internal/core/ports"
	"jobassist/internal/pkg/errs"
)

// Catalog is a concurrency-safe, insertion-ordered collection of job offers.
// It implements ports.JobCatalog.
//
// Insertion order is preserved because the matcher's ranking uses stable
// input order as its final tie-break; a map-backed store would make results
// nondeterministic.
type Catalog struct {
	mu     sync.RWMutex
	offers []*job.Job
}

// NewCatalog creates an empty in-memory job catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add registers a job offer. Offers must be constructed via job.NewJob;
// re-adding a known ID replaces the stored offer in place so refreshed
// listings keep their original position.
func (c *Catalog) Add(_ context.Context, offer *job.Job) error {
	if err := offer.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.offers {
		if existing.IsEqual(offer) {
			c.offers[i] = offer
			return nil
		}
	}

	c.offers = append(c.offers, offer)
	return nil
}

// Get retrieves an offer by ID.
// Returns an errs.ObjectNotFoundError when the ID is unknown.
func (c *Catalog) Get(_ context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, offer := range c.offers {
		if offer.ID().IsEqual(id) {
			return offer, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("jobId", id.String())
}

// GetAll returns a snapshot of all offers in insertion order.
func (c *Catalog) GetAll(_ context.Context) ([]*job.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]*job.Job, len(c.offers))
	copy(snapshot, c.offers)
	return snapshot, nil
}

// RemoveOlderThan evicts offers posted before the cutoff.
// Offers without a known posting time are kept.
func (c *Catalog) RemoveOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.offers[:0]
	removed := 0
	for _, offer := range c.offers {
		if !offer.PostedAt().IsZero() && offer.PostedAt().Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, offer)
	}
	for i := len(kept); i < len(c.offers); i++ {
		c.offers[i] = nil
	}
	c.offers = kept

	return removed, nil
}

var _ ports.JobCatalog = (*Catalog)(nil)
