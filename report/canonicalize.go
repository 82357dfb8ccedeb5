package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// CanonicalizeReport is the mandatory canonicalization choke point for
// reports. Report bytes must be canonical before CID derivation, signing or
// archival; any non-canonical input is rejected.
func CanonicalizeReport(input []byte) ([]byte, error) {
	if !utf8.Valid(input) {
		return nil, errors.New("report must be valid UTF-8")
	}
	if bytes.HasPrefix(input, []byte{0xEF, 0xBB, 0xBF}) {
		return nil, errors.New("BOM not allowed")
	}
	if bytes.Contains(input, []byte("\r")) {
		return nil, errors.New("CR line endings not allowed")
	}
	if len(input) == 0 {
		return nil, errors.New("empty report")
	}
	// Canonical reports emitted by Render always end with a newline.
	if input[len(input)-1] != '\n' {
		return nil, errors.New("missing trailing newline")
	}
	for _, line := range bytes.Split(input, []byte("\n")) {
		if len(line) > 0 && (line[len(line)-1] == ' ' || line[len(line)-1] == '\t') {
			return nil, errors.New("trailing whitespace forbidden")
		}
	}

	if err := validateCanonicalReport(string(input)); err != nil {
		return nil, err
	}

	return append([]byte(nil), input...), nil
}

var sectionOrder = []string{"META", "SUBJECT", "FINDINGS", "CRYPTO"}

func validateCanonicalReport(doc string) error {
	lines := strings.Split(doc, "\n")
	// Canonical reports have a trailing newline, so the last line is empty.
	if len(lines) < 3 {
		return errors.New("report too short")
	}
	if lines[0] != Preamble {
		return errors.New("missing report preamble")
	}
	if lines[len(lines)-1] != "" {
		return errors.New("missing trailing newline")
	}
	if lines[len(lines)-2] != Postamble {
		return errors.New("missing report postamble")
	}

	i := 1
	for _, sec := range sectionOrder {
		if i >= len(lines)-2 {
			return fmt.Errorf("missing section %q", sec)
		}
		if lines[i] != sec {
			return fmt.Errorf("sections missing or out of order (expected %q got %q)", sec, lines[i])
		}
		i++
		start := i
		for i < len(lines)-2 && lines[i] != "" {
			i++
		}
		if i >= len(lines)-2 {
			return fmt.Errorf("missing blank line after section %q", sec)
		}
		if err := validateSection(sec, lines[start:i]); err != nil {
			return err
		}
		i++
	}

	if i != len(lines)-2 {
		return errors.New("unexpected content before postamble")
	}
	return nil
}

func validateSection(section string, body []string) error {
	switch section {
	case "META":
		return validateMeta(body)
	case "SUBJECT":
		return validateSubject(body)
	case "FINDINGS":
		return validateFindings(body)
	case "CRYPTO":
		return validateCrypto(body)
	default:
		return fmt.Errorf("unknown section %q", section)
	}
}

func validateSortedStrict(lines []string) error {
	seen := make(map[string]bool)
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		if l == "" {
			return errors.New("empty line inside section")
		}
		if seen[l] {
			return errors.New("duplicate line")
		}
		seen[l] = true
		if i > 0 && !(lines[i-1] < lines[i]) {
			return errors.New("lines not sorted lexicographically")
		}
	}
	return nil
}

func validateKVLine(line string) (string, string, error) {
	if !strings.Contains(line, ": ") {
		return "", "", errors.New("invalid key-value formatting")
	}
	k, v, _ := strings.Cut(line, ": ")
	if k == "" {
		return "", "", errors.New("empty key")
	}
	if v == "" {
		return "", "", errors.New("empty value")
	}
	return k, v, nil
}

func requireKeys(section string, body []string, required []string) error {
	need := make(map[string]bool, len(required))
	for _, k := range required {
		need[k] = false
	}
	for _, l := range body {
		k, _, err := validateKVLine(l)
		if err != nil {
			return fmt.Errorf("%s: %w", section, err)
		}
		if _, ok := need[k]; ok {
			need[k] = true
		}
	}
	for k, ok := range need {
		if !ok {
			return fmt.Errorf("%s: missing %s", section, k)
		}
	}
	return nil
}

func validateMeta(body []string) error {
	if err := validateSortedStrict(body); err != nil {
		return fmt.Errorf("META: %w", err)
	}
	return requireKeys("META", body, []string{"Spec", "Validator-ID", "Version"})
}

func validateSubject(body []string) error {
	if err := validateSortedStrict(body); err != nil {
		return fmt.Errorf("SUBJECT: %w", err)
	}
	return requireKeys("SUBJECT", body, []string{"Errors", "Record-CID", "Status", "Warnings"})
}

type findingRecord struct {
	ruleID   string
	severity string
	path     string
	message  string
}

func validateFindings(body []string) error {
	if len(body) == 0 {
		return nil
	}
	var recs []findingRecord
	i := 0
	for i < len(body) {
		if !strings.HasPrefix(body[i], "Rule-ID: ") {
			return errors.New("FINDINGS: each record must start with Rule-ID")
		}
		_, id, err := validateKVLine(body[i])
		if err != nil {
			return fmt.Errorf("FINDINGS: %w", err)
		}
		fr := findingRecord{ruleID: id}
		i++

		if i >= len(body) || !strings.HasPrefix(body[i], "Severity: ") {
			return errors.New("FINDINGS: missing Severity")
		}
		_, sev, err := validateKVLine(body[i])
		if err != nil {
			return fmt.Errorf("FINDINGS: %w", err)
		}
		if sev != "error" && sev != "warning" {
			return fmt.Errorf("FINDINGS: invalid Severity %q", sev)
		}
		fr.severity = sev
		i++

		if i < len(body) && strings.HasPrefix(body[i], "Path: ") {
			_, v, err := validateKVLine(body[i])
			if err != nil {
				return fmt.Errorf("FINDINGS: %w", err)
			}
			fr.path = v
			i++
		}

		if i >= len(body) || !strings.HasPrefix(body[i], "Message: ") {
			return errors.New("FINDINGS: missing Message")
		}
		_, msg, err := validateKVLine(body[i])
		if err != nil {
			return fmt.Errorf("FINDINGS: %w", err)
		}
		fr.message = msg
		i++

		recs = append(recs, fr)
	}

	for i := 1; i < len(recs); i++ {
		if findingRecordLess(recs[i], recs[i-1]) {
			return errors.New("FINDINGS: records not sorted")
		}
	}
	return nil
}

func findingRecordLess(a, b findingRecord) bool {
	if a.ruleID != b.ruleID {
		return a.ruleID < b.ruleID
	}
	if a.path != b.path {
		return a.path < b.path
	}
	if a.message != b.message {
		return a.message < b.message
	}
	return a.severity == "error" && b.severity != "error"
}

func validateCrypto(body []string) error {
	if len(body) == 0 {
		return nil
	}
	if err := validateSortedStrict(body); err != nil {
		return fmt.Errorf("CRYPTO: %w", err)
	}
	return requireKeys("CRYPTO", body, []string{"Hash-Alg", "Signature", "Signature-Alg", "Validator-Key"})
}
