// Package report implements the canonical validation report format.
//
// A report binds one record (by CID) to the validation findings produced for
// it. Reports are deterministic text documents so they can be archived,
// content-addressed and re-verified; rendering the same findings always
// yields the same bytes.
package report

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"openreaction.dev/ordkit/cidutil"
	"openreaction.dev/ordkit/validation"
)

const (
	Preamble  = "-----BEGIN ORD VALIDATION REPORT-----"
	Postamble = "-----END ORD VALIDATION REPORT-----"
)

// Subject identifies the record a report is about.
type Subject struct {
	RecordCID string
	RecordID  string // optional
}

type RenderOptions struct {
	ValidatorID string
	ValidatedAt time.Time // informational only; zero means omit

	// Optional signing. If PrivateKey is set, the output includes a CRYPTO
	// section and Signature is computed over the report bytes excluding the
	// Signature: line.
	ValidatorKey string
	PrivateKey   ed25519.PrivateKey
}

// Render produces a canonical report binding a validation result to its
// subject record. Sections are always present and ordering is deterministic.
func Render(res *validation.Result, subject Subject, opts RenderOptions) []byte {
	validatorID := opts.ValidatorID
	if validatorID == "" {
		validatorID = "ordkit-validator-reference"
	}

	var sb strings.Builder
	sb.WriteString(Preamble)
	sb.WriteString("\n")

	// META
	sb.WriteString("META\n")
	metaLines := []string{
		"Spec: ord-report-1",
		"Validator-ID: " + validatorID,
		"Version: 1",
	}
	if !opts.ValidatedAt.IsZero() {
		metaLines = append(metaLines, "Validated-At: "+opts.ValidatedAt.UTC().Format(time.RFC3339))
	}
	sort.Strings(metaLines)
	for _, l := range metaLines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// SUBJECT
	errs := len(res.Errors())
	warns := len(res.Warnings())
	status := "pass"
	if errs > 0 {
		status = "fail"
	}
	sb.WriteString("SUBJECT\n")
	subjectLines := []string{
		"Errors: " + strconv.Itoa(errs),
		"Record-CID: " + subject.RecordCID,
		"Status: " + status,
		"Warnings: " + strconv.Itoa(warns),
	}
	if subject.RecordID != "" {
		subjectLines = append(subjectLines, "Record-Id: "+subject.RecordID)
	}
	sort.Strings(subjectLines)
	for _, l := range subjectLines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// FINDINGS
	sb.WriteString("FINDINGS\n")
	findings := append([]validation.Finding(nil), res.Findings...)
	sort.Slice(findings, func(i, j int) bool { return findingLess(findings[i], findings[j]) })
	for _, f := range findings {
		sb.WriteString("Rule-ID: ")
		sb.WriteString(f.RuleID)
		sb.WriteString("\nSeverity: ")
		sb.WriteString(f.Severity.String())
		sb.WriteString("\n")
		if f.Path != "" {
			sb.WriteString("Path: ")
			sb.WriteString(f.Path)
			sb.WriteString("\n")
		}
		sb.WriteString("Message: ")
		sb.WriteString(f.Message)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// CRYPTO
	sb.WriteString("CRYPTO\n")
	cryptoLines := []string{}
	if opts.ValidatorKey != "" {
		cryptoLines = append(cryptoLines,
			"Hash-Alg: sha256",
			"Signature-Alg: ed25519",
			"Signature: 0",
			"Validator-Key: "+opts.ValidatorKey,
		)
	}
	sort.Strings(cryptoLines)
	for _, l := range cryptoLines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(Postamble)
	sb.WriteString("\n")
	out := []byte(sb.String())

	if len(opts.PrivateKey) > 0 && opts.ValidatorKey != "" {
		sig, err := signReport(out, opts.PrivateKey)
		if err == nil {
			out = []byte(strings.Replace(string(out), "Signature: 0", "Signature: "+sig, 1))
		}
	}

	return out
}

func findingLess(a, b validation.Finding) bool {
	if a.RuleID != b.RuleID {
		return a.RuleID < b.RuleID
	}
	if a.Path != b.Path {
		return a.Path < b.Path
	}
	if a.Message != b.Message {
		return a.Message < b.Message
	}
	return a.Severity == validation.SeverityError && b.Severity != validation.SeverityError
}

// ReportCID returns the content identifier of canonical report bytes:
// a CIDv1 (raw + sha2-256).
func ReportCID(reportBytes []byte) string {
	return cidutil.CIDv1RawSHA256(reportBytes)
}

func signReport(reportBytes []byte, privateKey ed25519.PrivateKey) (string, error) {
	scope, err := signatureScope(reportBytes)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(scope)
	sig := ed25519.Sign(privateKey, digest[:])
	return base64.StdEncoding.EncodeToString(sig), nil
}

// signatureScope is the report bytes with the single Signature line removed.
func signatureScope(reportBytes []byte) ([]byte, error) {
	lines := strings.Split(string(reportBytes), "\n")
	var out []string
	removed := false
	for _, l := range lines {
		if strings.HasPrefix(l, "Signature: ") {
			if removed {
				return nil, errors.New("multiple Signature lines")
			}
			removed = true
			continue
		}
		out = append(out, l)
	}
	if !removed {
		return nil, errors.New("missing Signature line")
	}
	return []byte(strings.Join(out, "\n")), nil
}
