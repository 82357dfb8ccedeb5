package cidutil

import "testing"

func TestCIDv1RawSHA256(t *testing.T) {
	a := CIDv1RawSHA256([]byte("hello"))
	b := CIDv1RawSHA256([]byte("hello"))
	if a == "" || a != b {
		t.Fatalf("expected stable CID, got %q and %q", a, b)
	}
	if a[0] != 'b' {
		t.Errorf("expected base32 multibase prefix, got %q", a)
	}
	if CIDv1RawSHA256([]byte("hello\n")) == a {
		t.Error("different bytes must give different CIDs")
	}
}

func TestCIDv1RawSHA256CID(t *testing.T) {
	id, err := CIDv1RawSHA256CID([]byte("hello"))
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID: %v", err)
	}
	if !id.Defined() {
		t.Fatal("expected defined CID")
	}
	if id.String() != CIDv1RawSHA256([]byte("hello")) {
		t.Error("string and CID forms must agree")
	}
}
