package memstore

import (
	"testing"

	"openreaction.dev/ordkit/storage"
	"openreaction.dev/ordkit/storage/testkit"
)

func TestMemstore_Conformance(t *testing.T) {
	testkit.RunCASConformance(t, func(t *testing.T) storage.CAS {
		t.Helper()
		return New()
	})
}

func TestMemstore_GetReturnsCopy(t *testing.T) {
	cas := New()
	id, err := cas.Put([]byte("payload"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := cas.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got[0] = 'X'

	again, err := cas.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(again) != "payload" {
		t.Fatalf("stored object mutated through Get result: %q", again)
	}
	if cas.Len() != 1 {
		t.Fatalf("Len: got %d want 1", cas.Len())
	}
}
