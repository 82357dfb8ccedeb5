// Package memstore implements an in-memory CAS.
//
// It is used by tests and by the CLI when no durable backend is configured.
// Objects live for the lifetime of the process.
package memstore

import (
	"sync"

	"github.com/ipfs/go-cid"

	"openreaction.dev/ordkit/cidutil"
	"openreaction.dev/ordkit/storage"
)

// CAS is an in-memory content-addressable store keyed by CID string.
type CAS struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func New() *CAS {
	return &CAS{objects: make(map[string][]byte)}
}

func (c *CAS) Put(b []byte) (cid.Cid, error) {
	id, err := cidutil.CIDv1RawSHA256CID(b)
	if err != nil {
		return cid.Undef, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.objects[id.String()]; !ok {
		cp := make([]byte, len(b))
		copy(cp, b)
		c.objects[id.String()] = cp
	}
	return id, nil
}

func (c *CAS) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}

	c.mu.RLock()
	b, ok := c.objects[id.String()]
	c.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (c *CAS) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.objects[id.String()]
	return ok
}

// Len returns the number of stored objects.
func (c *CAS) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.objects)
}
