package policy

import (
	"testing"

	"openreaction.dev/ordkit/validation"
)

const validPolicy = `-----BEGIN ORD VALIDATION POLICY-----
META
Name: journal-submission
Spec: ord-policy-1
Version: 1

RULES
disable ORD-VAL-017
warn ORD-VAL-041
deny-warnings
-----END ORD VALIDATION POLICY-----`

func TestParseValidPolicy(t *testing.T) {
	p, err := Parse([]byte(validPolicy))
	if err != nil {
		t.Fatalf("expected valid policy, got error: %v", err)
	}
	if len(p.Disabled) != 1 || p.Disabled[0] != "ORD-VAL-017" {
		t.Errorf("expected ORD-VAL-017 disabled, got %+v", p.Disabled)
	}
	if len(p.Demoted) != 1 || p.Demoted[0] != "ORD-VAL-041" {
		t.Errorf("expected ORD-VAL-041 demoted, got %+v", p.Demoted)
	}
	if !p.DenyWarnings {
		t.Error("expected deny-warnings")
	}
	if p.Meta["Name"] != "journal-submission" {
		t.Errorf("unexpected meta %+v", p.Meta)
	}
}

func TestPolicyOptions(t *testing.T) {
	p, err := Parse([]byte(validPolicy))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	opts := p.Options()
	if opts.Mode != validation.Permissive {
		t.Errorf("expected permissive mode, got %v", opts.Mode)
	}
	if !opts.Disabled["ORD-VAL-017"] || !opts.Demoted["ORD-VAL-041"] || !opts.DenyWarnings {
		t.Errorf("options not compiled: %+v", opts)
	}
}

func TestParseStrictMode(t *testing.T) {
	text := `-----BEGIN ORD VALIDATION POLICY-----
META
Mode: strict

RULES
skip-derived-identifiers
-----END ORD VALIDATION POLICY-----`
	p, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	opts := p.Options()
	if opts.Mode != validation.Strict {
		t.Errorf("expected strict mode, got %v", opts.Mode)
	}
	if !opts.SkipDerivedIdentifiers {
		t.Error("expected skip-derived-identifiers")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing preamble", "META\nVersion: 1\n-----END ORD VALIDATION POLICY-----"},
		{"missing postamble", "-----BEGIN ORD VALIDATION POLICY-----\nMETA\nVersion: 1"},
		{"bad rule id", "-----BEGIN ORD VALIDATION POLICY-----\nRULES\ndisable VAL-17\n-----END ORD VALIDATION POLICY-----"},
		{"unknown directive", "-----BEGIN ORD VALIDATION POLICY-----\nRULES\nignore ORD-VAL-017\n-----END ORD VALIDATION POLICY-----"},
		{"duplicate directive", "-----BEGIN ORD VALIDATION POLICY-----\nRULES\ndeny-warnings\ndeny-warnings\n-----END ORD VALIDATION POLICY-----"},
		{"argument on deny-warnings", "-----BEGIN ORD VALIDATION POLICY-----\nRULES\ndeny-warnings ORD-VAL-001\n-----END ORD VALIDATION POLICY-----"},
		{"invalid mode", "-----BEGIN ORD VALIDATION POLICY-----\nMETA\nMode: loose\n-----END ORD VALIDATION POLICY-----"},
		{"cr line endings", "-----BEGIN ORD VALIDATION POLICY-----\r\nMETA\r\n-----END ORD VALIDATION POLICY-----"},
		{"content outside section", "-----BEGIN ORD VALIDATION POLICY-----\ndisable ORD-VAL-017\n-----END ORD VALIDATION POLICY-----"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.text)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestPolicyCIDStable(t *testing.T) {
	a := PolicyCID([]byte(validPolicy))
	b := PolicyCID([]byte(validPolicy))
	if a == "" || a != b {
		t.Errorf("expected stable CID, got %q and %q", a, b)
	}
	if PolicyCID([]byte(validPolicy+"\n")) == a {
		t.Error("different bytes must give different CIDs")
	}
}
