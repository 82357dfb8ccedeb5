// Package record implements the canonical text envelope for a single
// reaction record.
//
// A record is a four-section "Key: Value" document wrapped in BEGIN/END
// armor. Byte-level canonicalization is mandatory: Parse re-renders the
// parsed structure and rejects any input that does not match byte for byte,
// so hashing, signing and content addressing always operate on exactly one
// serialization of a given record.
package record

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"openreaction.dev/ordkit/cidutil"
	"openreaction.dev/ordkit/reaction"
)

// SectionOrder defines the canonical order of record sections.
var SectionOrder = []string{"META", "REACTION", "PROVENANCE", "CRYPTO"}

const (
	Preamble  = "-----BEGIN ORD RECORD-----"
	Postamble = "-----END ORD RECORD-----"

	// FormatName and FormatVersion are the required META self-description.
	FormatName    = "ord-record"
	FormatVersion = "1"
)

// Record is a parsed record.
type Record struct {
	Sections map[string]Section

	raw    []byte // canonical bytes
	signed []byte // bytes covered by the signature (BEGIN..end of PROVENANCE)
}

type Section struct {
	Name  string
	Pairs map[string]string
}

// Parse parses record bytes and enforces the canonical serialization rules.
// Non-canonical inputs are rejected with a Canonical-kind error.
func Parse(data []byte) (*Record, error) {
	if !utf8.Valid(data) {
		return nil, newError(KindParse, "ORD-STR-001", "record must be valid UTF-8")
	}
	if bytes.Contains(data, []byte("\r")) {
		return nil, newError(KindCanonical, "ORD-CANON-001", "CR line endings not allowed")
	}
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		return nil, newError(KindCanonical, "ORD-CANON-002", "BOM not allowed")
	}
	if len(data) > 0 && data[len(data)-1] == '\n' {
		return nil, newError(KindCanonical, "ORD-CANON-003", "trailing newline not allowed")
	}
	if !bytes.HasPrefix(data, []byte(Preamble)) {
		return nil, newError(KindParse, "ORD-STR-010", "missing record preamble")
	}
	if !bytes.HasSuffix(data, []byte(Postamble)) {
		return nil, newError(KindParse, "ORD-STR-011", "missing record postamble")
	}
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(line) > 0 && (line[len(line)-1] == ' ' || line[len(line)-1] == '\t') {
			return nil, newError(KindCanonical, "ORD-CANON-004", "trailing whitespace forbidden")
		}
	}
	if !bytes.HasPrefix(data, []byte(Preamble+"\n")) {
		return nil, newError(KindParse, "ORD-STR-012", "record preamble must be on its own line")
	}

	sections := make(map[string]Section)
	reader := bufio.NewReader(bytes.NewReader(data))
	readLine := func() (string, error) {
		l, err := reader.ReadString('\n')
		if err == io.EOF {
			return strings.TrimRight(l, "\n"), io.EOF
		}
		if err != nil {
			return "", err
		}
		return strings.TrimRight(l, "\n"), nil
	}

	first, err := readLine()
	if err != nil && err != io.EOF {
		return nil, err
	}
	if first != Preamble {
		return nil, newError(KindParse, "ORD-STR-012", "record preamble must be exact")
	}

	sectionIndex := -1
	var currSection string
	var currPairs map[string]string
	var currKeyOrder []string
	seenSection := map[string]bool{}
	seenAnySection := false
	afterSeparator := false

	flushSection := func() error {
		if currSection == "" {
			return nil
		}
		sorted := append([]string(nil), currKeyOrder...)
		sort.Strings(sorted)
		for i := range sorted {
			if sorted[i] != currKeyOrder[i] {
				return newError(KindCanonical, "ORD-CANON-010", "keys not sorted lexicographically")
			}
		}
		sections[currSection] = Section{Name: currSection, Pairs: currPairs}
		currSection = ""
		currPairs = nil
		currKeyOrder = nil
		return nil
	}

	for {
		line, rerr := readLine()
		if rerr != nil && rerr != io.EOF {
			return nil, rerr
		}

		if line == Postamble {
			if afterSeparator {
				return nil, newError(KindCanonical, "ORD-CANON-011", "unexpected blank line before postamble")
			}
			if err := flushSection(); err != nil {
				return nil, err
			}
			break
		}

		if isSectionHeader(line) {
			seenAnySection = true
			if currSection != "" {
				return nil, newError(KindCanonical, "ORD-CANON-012", "missing blank line between sections")
			}
			if seenSection[line] {
				return nil, newError(KindParse, "ORD-STR-020", "duplicate section "+line)
			}
			if err := flushSection(); err != nil {
				return nil, err
			}
			sectionIndex++
			if sectionIndex >= len(SectionOrder) || SectionOrder[sectionIndex] != line {
				return nil, newError(KindParse, "ORD-STR-021", "sections missing or out of order")
			}
			if sectionIndex == 0 {
				if afterSeparator {
					return nil, newError(KindCanonical, "ORD-CANON-013", "blank line before first section not allowed")
				}
			} else if !afterSeparator {
				return nil, newError(KindCanonical, "ORD-CANON-012", "missing blank line between sections")
			}
			afterSeparator = false
			seenSection[line] = true
			currSection = line
			currPairs = make(map[string]string)
			continue
		}

		if !seenAnySection {
			return nil, newError(KindParse, "ORD-STR-022", "unexpected content before first section")
		}

		if line == "" {
			if currSection == "" {
				return nil, newError(KindCanonical, "ORD-CANON-014", "blank line outside section not allowed")
			}
			if currSection == "CRYPTO" {
				return nil, newError(KindCanonical, "ORD-CANON-015", "blank line after CRYPTO section not allowed")
			}
			if afterSeparator {
				return nil, newError(KindCanonical, "ORD-CANON-016", "multiple blank lines between sections not allowed")
			}
			if err := flushSection(); err != nil {
				return nil, err
			}
			afterSeparator = true
			continue
		}

		if currSection == "" {
			return nil, newError(KindParse, "ORD-STR-023", "content outside section")
		}
		if afterSeparator {
			return nil, newError(KindParse, "ORD-STR-024", "expected section header after blank line")
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, newError(KindParse, "ORD-STR-030", "invalid key-value formatting")
		}
		if key == "" {
			return nil, newError(KindParse, "ORD-STR-031", "empty key")
		}
		if !isASCII(key) {
			return nil, newError(KindParse, "ORD-STR-032", "non-ASCII key")
		}
		if strings.HasPrefix(val, " ") {
			return nil, newError(KindCanonical, "ORD-CANON-017", "value must not start with a space")
		}
		if _, exists := currPairs[key]; exists {
			return nil, newError(KindParse, "ORD-STR-033", "duplicate key in section")
		}
		currPairs[key] = val
		currKeyOrder = append(currKeyOrder, key)

		if rerr == io.EOF {
			return nil, newError(KindParse, "ORD-STR-011", "missing record postamble")
		}
	}

	for _, s := range SectionOrder {
		if !seenSection[s] {
			return nil, newError(KindParse, "ORD-STR-021", "sections missing or out of order")
		}
	}

	// Enforce full canonical byte identity by re-rendering and comparing.
	// This makes Parse strictly reject any non-canonical input.
	canonical, rerr := Render(Document{
		Meta:       sections["META"].Pairs,
		Reaction:   sections["REACTION"].Pairs,
		Provenance: sections["PROVENANCE"].Pairs,
		Crypto:     sections["CRYPTO"].Pairs,
	})
	if rerr != nil {
		return nil, rerr
	}
	if !bytes.Equal(data, canonical) {
		return nil, newError(KindCanonical, "ORD-CANON-020", "non-canonical record")
	}

	meta := sections["META"].Pairs
	if meta["Format"] != FormatName {
		return nil, newError(KindParse, "ORD-STR-040", "META Format must be "+FormatName)
	}
	if meta["Format-Version"] != FormatVersion {
		return nil, newError(KindParse, "ORD-STR-041", "unsupported Format-Version")
	}
	if id := meta["Record-Id"]; id != "" && !ValidRecordID(id) {
		return nil, newError(KindParse, "ORD-STR-042", "malformed Record-Id")
	}

	signed, err := signedScope(canonical)
	if err != nil {
		return nil, err
	}
	return &Record{Sections: sections, raw: canonical, signed: signed}, nil
}

// signedScope returns the bytes covered by the signature: the BEGIN line
// through the end of PROVENANCE, inclusive of the separating newline.
// Canonical rendering emits exactly one blank line before CRYPTO.
func signedScope(canonical []byte) ([]byte, error) {
	marker := []byte("\nCRYPTO\n")
	idx := bytes.Index(canonical, marker)
	if idx < 0 {
		return nil, newError(KindInternal, "ORD-INTERNAL-001", "cannot determine signature scope")
	}
	return canonical[:idx+1], nil
}

// Canonicalize is the mandatory canonicalization choke point. All hashing,
// signing, CID derivation and storage ingestion pass through it; it rejects
// any non-canonical input.
func Canonicalize(input []byte) ([]byte, error) {
	r, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return r.Bytes(), nil
}

// Bytes returns a copy of the canonical record bytes.
func (r *Record) Bytes() []byte {
	return append([]byte(nil), r.raw...)
}

// SignedBytes returns a copy of the bytes covered by the signature.
func (r *Record) SignedBytes() []byte {
	return append([]byte(nil), r.signed...)
}

// CID returns the content identifier of the canonical record bytes:
// a CIDv1 (raw + sha2-256).
func (r *Record) CID() string {
	return cidutil.CIDv1RawSHA256(r.raw)
}

// RecordID returns the META Record-Id, or "" when unassigned.
func (r *Record) RecordID() string {
	return r.sectionPair("META", "Record-Id")
}

// Created returns the META Created timestamp, or "".
func (r *Record) Created() string {
	return r.sectionPair("META", "Created")
}

// Reaction rebuilds the reaction message from the REACTION section.
func (r *Record) Reaction() (*reaction.Reaction, error) {
	return Unflatten(r.Sections["REACTION"].Pairs)
}

func (r *Record) sectionPair(section, key string) string {
	if sec, ok := r.Sections[section]; ok {
		return sec.Pairs[key]
	}
	return ""
}

func isSectionHeader(line string) bool {
	for _, s := range SectionOrder {
		if line == s {
			return true
		}
	}
	return false
}
