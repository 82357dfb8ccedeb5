// Package dataset ties the reaction schema, validation, the record envelope
// and content-addressed storage together.
//
// A Store ingests reaction messages: each Put validates the reaction, renders
// canonical record bytes, stores them in the configured CAS and returns the
// record ID together with the CID of the stored bytes. Records can then be
// fetched, re-validated and exchanged as deterministic TAR bundles.
package dataset

import (
	"crypto/ed25519"
	"fmt"
	"io"
	"time"

	"github.com/ipfs/go-cid"

	"openreaction.dev/ordkit/cidutil"
	"openreaction.dev/ordkit/reaction"
	"openreaction.dev/ordkit/record"
	"openreaction.dev/ordkit/report"
	"openreaction.dev/ordkit/storage"
	"openreaction.dev/ordkit/storage/bundle"
	"openreaction.dev/ordkit/validation"
)

// Store binds a CAS to the record codec.
//
// Opts tunes validation on ingest; nil means permissive defaults. Now is
// overridable for deterministic tests and defaults to time.Now.
type Store struct {
	CAS  storage.CAS
	Opts *validation.Options
	Now  func() time.Time
}

func New(cas storage.CAS) *Store {
	return &Store{CAS: cas}
}

// PutOptions customizes a single ingest.
//
// RecordID is assigned when empty. When PrivateKey is set the record is
// signed (ed25519 over sha-256); PublicKey must be the matching public key.
type PutOptions struct {
	RecordID string
	Username string

	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// InvalidError is returned by Put when the reaction fails validation.
// The full Result is attached so callers can render a report.
type InvalidError struct {
	Result *validation.Result
}

func (e *InvalidError) Error() string {
	errs := e.Result.Errors()
	if len(errs) == 0 {
		return "dataset: reaction rejected by validation"
	}
	f := errs[0]
	if len(errs) == 1 {
		return fmt.Sprintf("dataset: %s at %s: %s", f.RuleID, f.Path, f.Message)
	}
	return fmt.Sprintf("dataset: %s at %s: %s (and %d more errors)",
		f.RuleID, f.Path, f.Message, len(errs)-1)
}

// Put validates r, renders canonical record bytes and stores them.
// It returns the record ID and the CID of the stored bytes.
func (s *Store) Put(r *reaction.Reaction, opts PutOptions) (string, cid.Cid, error) {
	res, err := validation.ValidateReaction(r, s.Opts)
	if err != nil {
		return "", cid.Undef, &InvalidError{Result: res}
	}
	if !res.OK() {
		return "", cid.Undef, &InvalidError{Result: res}
	}
	if s.Opts != nil && s.Opts.DenyWarnings && len(res.Warnings()) > 0 {
		return "", cid.Undef, &InvalidError{Result: res}
	}

	pairs, err := record.Flatten(r)
	if err != nil {
		return "", cid.Undef, err
	}

	recordID := opts.RecordID
	if recordID == "" {
		recordID = record.NewRecordID()
	} else if !record.ValidRecordID(recordID) {
		return "", cid.Undef, fmt.Errorf("dataset: malformed record ID %q", recordID)
	}

	created := s.now().UTC().Format(time.RFC3339)
	doc := record.Document{
		Meta: map[string]string{
			"Created":        created,
			"Format":         record.FormatName,
			"Format-Version": record.FormatVersion,
			"Record-Id":      recordID,
		},
		Reaction: pairs,
		Provenance: map[string]string{
			"Record-Created": created,
		},
	}
	if opts.Username != "" {
		doc.Provenance["Username"] = opts.Username
	}

	var out []byte
	if opts.PrivateKey != nil {
		pub := opts.PublicKey
		if pub == nil {
			pub = opts.PrivateKey.Public().(ed25519.PublicKey)
		}
		out, err = record.SignEd25519(doc, pub, opts.PrivateKey)
	} else {
		out, err = record.Render(doc)
	}
	if err != nil {
		return "", cid.Undef, err
	}

	// Ingestion goes through the canonicalization choke point: only bytes
	// that Parse accepts are ever stored.
	rec, err := record.Parse(out)
	if err != nil {
		return "", cid.Undef, err
	}
	id, err := s.CAS.Put(rec.Bytes())
	if err != nil {
		return "", cid.Undef, err
	}
	return recordID, id, nil
}

// PutRecord ingests pre-rendered record bytes. The bytes must be canonical
// and the embedded reaction must pass validation; the bytes are stored
// exactly as given.
func (s *Store) PutRecord(data []byte) (cid.Cid, error) {
	rec, err := record.Parse(data)
	if err != nil {
		return cid.Undef, err
	}
	rxn, err := rec.Reaction()
	if err != nil {
		return cid.Undef, err
	}
	res, verr := validation.ValidateReaction(rxn, s.Opts)
	if verr != nil || !res.OK() {
		return cid.Undef, &InvalidError{Result: res}
	}
	if s.Opts != nil && s.Opts.DenyWarnings && len(res.Warnings()) > 0 {
		return cid.Undef, &InvalidError{Result: res}
	}
	return s.CAS.Put(rec.Bytes())
}

// Get fetches and parses the record stored under id.
func (s *Store) Get(id cid.Cid) (*record.Record, error) {
	b, err := s.CAS.Get(id)
	if err != nil {
		return nil, err
	}
	return record.Parse(b)
}

// Validate fetches the record stored under id, re-validates its reaction and
// renders a canonical validation report document.
func (s *Store) Validate(id cid.Cid, opts report.RenderOptions) (*validation.Result, *report.Document, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	rxn, err := rec.Reaction()
	if err != nil {
		return nil, nil, err
	}
	res, verr := validation.ValidateReaction(rxn, s.Opts)
	if verr != nil && res == nil {
		return nil, nil, verr
	}
	doc, err := report.RenderDocument(res, report.Subject{
		RecordCID: rec.CID(),
		RecordID:  rec.RecordID(),
	}, opts)
	if err != nil {
		return res, nil, err
	}
	return res, doc, nil
}

// Export writes the records under ids as a deterministic TAR bundle.
func (s *Store) Export(w io.Writer, ids []cid.Cid) error {
	return bundle.Export(w, s.CAS, ids, bundle.ExportOptions{IncludeIndex: true})
}

// Import ingests a bundle. Every block must parse as a canonical record;
// bundles carrying other content are rejected before anything is stored.
func (s *Store) Import(r io.Reader) error {
	staging := newStagingCAS()
	if err := bundle.Import(r, staging); err != nil {
		return err
	}
	for _, b := range staging.blocks {
		if _, err := record.Parse(b); err != nil {
			return fmt.Errorf("dataset: bundle block is not a canonical record: %w", err)
		}
	}
	for _, b := range staging.blocks {
		if _, err := s.CAS.Put(b); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// stagingCAS buffers bundle blocks in insertion order so Import can verify
// every block before touching the backing store.
type stagingCAS struct {
	ids    map[string]struct{}
	blocks [][]byte
}

func newStagingCAS() *stagingCAS {
	return &stagingCAS{ids: make(map[string]struct{})}
}

func (c *stagingCAS) Put(b []byte) (cid.Cid, error) {
	id, err := cidutil.CIDv1RawSHA256CID(b)
	if err != nil {
		return cid.Undef, err
	}
	if _, ok := c.ids[id.String()]; !ok {
		c.ids[id.String()] = struct{}{}
		cp := make([]byte, len(b))
		copy(cp, b)
		c.blocks = append(c.blocks, cp)
	}
	return id, nil
}

func (c *stagingCAS) Get(id cid.Cid) ([]byte, error) {
	return nil, storage.ErrNotFound
}

func (c *stagingCAS) Has(id cid.Cid) bool {
	_, ok := c.ids[id.String()]
	return ok
}
