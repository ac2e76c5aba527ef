package main

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// SyncState tracks where a record sits in the optimistic-write cycle.
type SyncState int

const (
	StateSynced SyncState = iota
	StateMutating
	StateReverting
)

// TransportError wraps a failed remote store call. By the time the caller
// sees it the gateway has already reconciled the local collection, so the
// error is user-visible but never fatal.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("record store %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Record is anything the gateway can mirror from the record store.
type Record interface {
	RecordID() string
}

// RecordID implements Record for donation items.
func (d DonationItem) RecordID() string { return d.ID }

// RecordID implements Record for registrations.
func (r Registration) RecordID() string { return r.ID }

// RemoteCollection is the record-store side of one collection. All calls
// may fail with a transport-level error.
type RemoteCollection[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, id string) error
}

// SyncedCollection mirrors one remote collection in memory and applies
// mutations optimistically: the local copy changes first, then the remote
// write goes out. On failure there is no field-level rollback; the whole
// collection is refetched, discarding the optimistic change. Coarse, but
// every failure path ends in a consistent, re-syncable state.
//
// There is no server-side version check: with two concurrent operators the
// last remote write wins. Accepted for a low-concurrency operator tool.
type SyncedCollection[T Record] struct {
	remote RemoteCollection[T]

	mu      sync.RWMutex
	records []T
	states  map[string]SyncState
}

// NewSyncedCollection wraps a remote collection. Call Load before reading.
func NewSyncedCollection[T Record](remote RemoteCollection[T]) *SyncedCollection[T] {
	return &SyncedCollection[T]{
		remote: remote,
		states: make(map[string]SyncState),
	}
}

// Load replaces the local mirror with a fresh fetch from the remote store.
func (c *SyncedCollection[T]) Load(ctx context.Context) error {
	records, err := c.remote.List(ctx)
	if err != nil {
		return &TransportError{Op: "list", Err: err}
	}

	c.mu.Lock()
	c.records = records
	c.states = make(map[string]SyncState)
	c.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current in-memory collection.
func (c *SyncedCollection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]T, len(c.records))
	copy(snapshot, c.records)
	return snapshot
}

// Get returns the in-memory record with the given id.
func (c *SyncedCollection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, record := range c.records {
		if record.RecordID() == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// State reports the sync state of one record.
func (c *SyncedCollection[T]) State(id string) SyncState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.states[id]
}

// Update applies an updated record locally, then forwards it to the remote
// store. On failure the collection is refetched and the optimistic change
// is gone.
func (c *SyncedCollection[T]) Update(ctx context.Context, updated T) (T, error) {
	id := updated.RecordID()

	c.mu.Lock()
	replaced := false
	for i, record := range c.records {
		if record.RecordID() == id {
			c.records[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		c.mu.Unlock()
		var zero T
		return zero, fmt.Errorf("record %s not found", id)
	}
	c.states[id] = StateMutating
	c.mu.Unlock()

	if err := c.remote.Update(ctx, updated); err != nil {
		c.revert(ctx, id)
		var zero T
		return zero, &TransportError{Op: "update", Err: err}
	}

	c.setSynced(id)
	return updated, nil
}

// Insert forwards a new record to the remote store and appends the stored
// result (with its assigned id and timestamps) to the mirror. The store
// assigns identity, so there is nothing to apply optimistically first.
func (c *SyncedCollection[T]) Insert(ctx context.Context, record T) (T, error) {
	inserted, err := c.remote.Insert(ctx, record)
	if err != nil {
		var zero T
		return zero, &TransportError{Op: "insert", Err: err}
	}

	c.mu.Lock()
	c.records = append(c.records, inserted)
	c.mu.Unlock()
	return inserted, nil
}

// Delete removes a record locally, then from the remote store. On failure
// the collection is refetched and the record reappears.
func (c *SyncedCollection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	for i, record := range c.records {
		if record.RecordID() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			break
		}
	}
	c.states[id] = StateMutating
	c.mu.Unlock()

	if err := c.remote.Delete(ctx, id); err != nil {
		c.revert(ctx, id)
		return &TransportError{Op: "delete", Err: err}
	}

	c.setSynced(id)
	return nil
}

// revert reconciles after a failed remote write by refetching the whole
// collection. If the refetch itself fails the stale mirror stays in place;
// the next successful Load resyncs it.
func (c *SyncedCollection[T]) revert(ctx context.Context, id string) {
	c.mu.Lock()
	c.states[id] = StateReverting
	c.mu.Unlock()

	if err := c.Load(ctx); err != nil {
		log.Printf("Error refetching collection after failed write: %v", err)
		c.setSynced(id)
	}
}

func (c *SyncedCollection[T]) setSynced(id string) {
	c.mu.Lock()
	delete(c.states, id)
	c.mu.Unlock()
}
