package report

import (
	"openreaction.dev/ordkit/cidutil"
	"openreaction.dev/ordkit/validation"
)

// Document is a first-class report evidence object.
//
// Bytes are canonical report bytes; CID is derived from Bytes. Reports are
// treated as documents (not ephemeral output) so they can be archived,
// inspected and re-verified.
type Document struct {
	Bytes []byte
	CID   string
}

// NewDocumentFromBytes canonicalizes report bytes and computes the CID.
func NewDocumentFromBytes(reportBytes []byte) (*Document, error) {
	canon, err := CanonicalizeReport(reportBytes)
	if err != nil {
		return nil, err
	}
	return &Document{Bytes: canon, CID: cidutil.CIDv1RawSHA256(canon)}, nil
}

// RenderDocument renders report bytes from a validation result and returns a
// canonical Document (bytes + CID).
func RenderDocument(res *validation.Result, subject Subject, opts RenderOptions) (*Document, error) {
	return NewDocumentFromBytes(Render(res, subject, opts))
}
