package report

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// VerifySignature verifies the report CRYPTO signature, if present.
//
// Returns (true, nil) if the report is signed and the signature verifies.
// Returns (false, nil) if the report is not signed (empty CRYPTO section).
// Returns (false, err) for malformed, non-canonical, or invalid signatures.
func VerifySignature(reportBytes []byte) (bool, error) {
	canon, err := CanonicalizeReport(reportBytes)
	if err != nil {
		return false, fmt.Errorf("canonical report required: %w", err)
	}

	cryptoLines, err := sectionLines(canon, "CRYPTO")
	if err != nil {
		return false, err
	}
	if len(cryptoLines) == 0 {
		return false, nil
	}

	fields := make(map[string]string, len(cryptoLines))
	for _, l := range cryptoLines {
		k, v, err := validateKVLine(l)
		if err != nil {
			return false, fmt.Errorf("CRYPTO: %w", err)
		}
		fields[k] = v
	}
	sigAlg, hashAlg := fields["Signature-Alg"], fields["Hash-Alg"]
	validatorKey, sigB64 := fields["Validator-Key"], fields["Signature"]
	if sigAlg == "" || hashAlg == "" || validatorKey == "" || sigB64 == "" {
		return false, errors.New("CRYPTO: incomplete signature fields")
	}
	if sigAlg != "ed25519" {
		return false, fmt.Errorf("CRYPTO: unsupported Signature-Alg %q", sigAlg)
	}
	if hashAlg != "sha256" {
		return false, fmt.Errorf("CRYPTO: unsupported Hash-Alg %q", hashAlg)
	}

	pub, err := parseEd25519PublicKey(validatorKey)
	if err != nil {
		return false, err
	}
	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return false, fmt.Errorf("CRYPTO: invalid Signature encoding: %w", err)
	}
	if len(sig) != ed25519.SignatureSize {
		return false, errors.New("CRYPTO: invalid Signature length")
	}

	scope, err := signatureScope(canon)
	if err != nil {
		return false, err
	}
	digest := sha256.Sum256(scope)
	if !ed25519.Verify(pub, digest[:], sig) {
		return false, errors.New("CRYPTO: signature did not verify")
	}
	return true, nil
}

func sectionLines(canon []byte, section string) ([]string, error) {
	lines := strings.Split(string(canon), "\n")
	for i := 0; i < len(lines); i++ {
		if lines[i] != section {
			continue
		}
		var body []string
		for j := i + 1; j < len(lines) && lines[j] != ""; j++ {
			body = append(body, lines[j])
		}
		return body, nil
	}
	return nil, fmt.Errorf("missing section %q", section)
}

func parseEd25519PublicKey(s string) (ed25519.PublicKey, error) {
	const prefix = "ed25519:"
	if !strings.HasPrefix(s, prefix) {
		return nil, fmt.Errorf("CRYPTO: unsupported Validator-Key %q", s)
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, prefix))
	if err != nil {
		return nil, fmt.Errorf("CRYPTO: invalid Validator-Key encoding: %w", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, errors.New("CRYPTO: invalid Validator-Key length")
	}
	return ed25519.PublicKey(b), nil
}
