package storage

import (
	"errors"

	"github.com/ipfs/go-cid"
)

// MultiCAS reads from an ordered list of adapters and writes to the first.
//
// Retrieval order is the slice order; callers MUST supply a fixed order so
// record lookups stay deterministic across runs. A typical arrangement is a
// fast local store first and an archive mirror behind it.
type MultiCAS struct {
	Adapters []CAS
}

func (m MultiCAS) Put(bytes []byte) (cid.Cid, error) {
	if len(m.Adapters) == 0 {
		return cid.Undef, errors.New("storage: MultiCAS has no adapters")
	}
	return m.Adapters[0].Put(bytes)
}

// Get tries each adapter in order. ErrNotFound from one adapter falls through
// to the next; any other error aborts the lookup.
func (m MultiCAS) Get(id cid.Cid) ([]byte, error) {
	for _, cas := range m.Adapters {
		b, err := cas.Get(id)
		if err == nil {
			return b, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (m MultiCAS) Has(id cid.Cid) bool {
	for _, cas := range m.Adapters {
		if cas.Has(id) {
			return true
		}
	}
	return false
}
