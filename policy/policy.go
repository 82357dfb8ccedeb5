// Package policy implements parsing for validation policy documents.
//
// A policy tunes how a record is validated without code changes: individual
// rules can be disabled or demoted to warnings, warnings can be made fatal,
// and the overall mode can be switched between permissive and strict. The
// format is line oriented:
//
//	-----BEGIN ORD VALIDATION POLICY-----
//	META
//	Mode: strict
//	Name: journal-submission
//	RULES
//	disable ORD-VAL-017
//	warn ORD-VAL-041
//	deny-warnings
//	-----END ORD VALIDATION POLICY-----
package policy

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"openreaction.dev/ordkit/cidutil"
	"openreaction.dev/ordkit/validation"
)

const (
	Preamble  = "-----BEGIN ORD VALIDATION POLICY-----"
	Postamble = "-----END ORD VALIDATION POLICY-----"
)

type Policy struct {
	Meta map[string]string

	Disabled     []string
	Demoted      []string
	DenyWarnings bool
	SkipDerived  bool
}

var ruleIDRe = regexp.MustCompile(`^ORD-VAL-\d{3}$`)

// Parse parses a policy document from bytes.
func Parse(data []byte) (*Policy, error) {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		return nil, errors.New("BOM not allowed")
	}
	if bytes.Contains(data, []byte("\r")) {
		return nil, errors.New("CR line endings not allowed")
	}
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(line) > 0 && (line[len(line)-1] == ' ' || line[len(line)-1] == '\t') {
			return nil, errors.New("trailing whitespace forbidden")
		}
	}
	if !bytes.HasPrefix(data, []byte(Preamble)) {
		return nil, errors.New("missing policy preamble")
	}
	if !bytes.HasSuffix(bytes.TrimSpace(data), []byte(Postamble)) {
		return nil, errors.New("missing policy postamble")
	}

	sections := map[string]bool{"META": true, "RULES": true}
	reader := bufio.NewReader(bytes.NewReader(data))
	p := &Policy{Meta: make(map[string]string)}
	var currSection string
	seen := make(map[string]bool)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "" || line == Preamble || line == Postamble:
		case sections[line]:
			currSection = line
		case currSection == "META":
			key, val, ok := strings.Cut(line, ": ")
			if !ok || key == "" || val == "" {
				return nil, fmt.Errorf("invalid META line %q", line)
			}
			p.Meta[key] = val
		case currSection == "RULES":
			if err := p.applyDirective(line, seen); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("content outside section: %q", line)
		}
		if err == io.EOF {
			break
		}
	}
	if mode := p.Meta["Mode"]; mode != "" && mode != "strict" && mode != "permissive" {
		return nil, fmt.Errorf("invalid Mode %q", mode)
	}
	return p, nil
}

func (p *Policy) applyDirective(line string, seen map[string]bool) error {
	if seen[line] {
		return fmt.Errorf("duplicate directive %q", line)
	}
	seen[line] = true

	directive, arg, _ := strings.Cut(line, " ")
	switch directive {
	case "disable", "warn":
		if !ruleIDRe.MatchString(arg) {
			return fmt.Errorf("%s: invalid rule ID %q", directive, arg)
		}
		if directive == "disable" {
			p.Disabled = append(p.Disabled, arg)
		} else {
			p.Demoted = append(p.Demoted, arg)
		}
		return nil
	case "deny-warnings":
		if arg != "" {
			return fmt.Errorf("deny-warnings takes no argument, got %q", arg)
		}
		p.DenyWarnings = true
		return nil
	case "skip-derived-identifiers":
		if arg != "" {
			return fmt.Errorf("skip-derived-identifiers takes no argument, got %q", arg)
		}
		p.SkipDerived = true
		return nil
	default:
		return fmt.Errorf("unknown directive %q", directive)
	}
}

// Options compiles the policy into validation options.
func (p *Policy) Options() *validation.Options {
	opts := &validation.Options{
		DenyWarnings:           p.DenyWarnings,
		SkipDerivedIdentifiers: p.SkipDerived,
	}
	if p.Meta["Mode"] == "strict" {
		opts.Mode = validation.Strict
	}
	if len(p.Disabled) > 0 {
		opts.Disabled = make(map[string]bool, len(p.Disabled))
		for _, id := range p.Disabled {
			opts.Disabled[id] = true
		}
	}
	if len(p.Demoted) > 0 {
		opts.Demoted = make(map[string]bool, len(p.Demoted))
		for _, id := range p.Demoted {
			opts.Demoted[id] = true
		}
	}
	return opts
}

// PolicyCID returns a deterministic content identifier for a policy
// document: a CIDv1 (raw + sha2-256) over the exact bytes.
func PolicyCID(policyBytes []byte) string {
	return cidutil.CIDv1RawSHA256(policyBytes)
}
