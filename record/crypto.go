package record

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"openreaction.dev/ordkit/keys"
)

// Records are optionally signed. The signature covers the canonical bytes
// from the BEGIN line through the end of PROVENANCE; the CRYPTO section
// carries Issuer-Key, Signature-Alg, Hash-Alg and Signature.

func (r *Record) SignatureAlg() string { return r.sectionPair("CRYPTO", "Signature-Alg") }
func (r *Record) HashAlg() string      { return r.sectionPair("CRYPTO", "Hash-Alg") }
func (r *Record) Signature() string    { return r.sectionPair("CRYPTO", "Signature") }
func (r *Record) IssuerKey() string    { return r.sectionPair("CRYPTO", "Issuer-Key") }

// Signed reports whether the record carries a signature.
func (r *Record) Signed() bool {
	return r.Signature() != ""
}

// IssuerPublicKeyBytes returns the raw public key bytes for the issuer.
// Supported encodings:
//   - ed25519:<base64>
//   - dilithium3:<base64>
func (r *Record) IssuerPublicKeyBytes() ([]byte, error) {
	issuer := r.IssuerKey()
	if issuer == "" {
		return nil, newError(KindCrypto, "ORD-CRYPTO-103", "missing Issuer-Key")
	}
	alg, enc, ok := strings.Cut(issuer, ":")
	if !ok {
		return nil, newError(KindCrypto, "ORD-CRYPTO-111", "invalid Issuer-Key encoding")
	}
	pub, err := decodeBase64(enc)
	if err != nil {
		return nil, wrapError(KindCrypto, "ORD-CRYPTO-113", "invalid issuer key base64", err)
	}
	switch alg {
	case "ed25519":
		if len(pub) != ed25519.PublicKeySize {
			return nil, newError(KindCrypto, "ORD-CRYPTO-114", "invalid ed25519 public key length")
		}
		return pub, nil
	case "dilithium3":
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(pub); err != nil {
			return nil, wrapError(KindCrypto, "ORD-CRYPTO-115", "invalid dilithium3 public key", err)
		}
		return pub, nil
	default:
		return nil, newError(KindCrypto, "ORD-CRYPTO-112", "unsupported issuer key encoding")
	}
}

func (r *Record) SignatureBytes() ([]byte, error) {
	s := r.Signature()
	if s == "" {
		return nil, newError(KindCrypto, "ORD-CRYPTO-104", "missing Signature")
	}
	sig, err := decodeBase64(s)
	if err != nil {
		return nil, wrapError(KindCrypto, "ORD-CRYPTO-131", "invalid signature base64", err)
	}
	switch r.SignatureAlg() {
	case "":
		return nil, newError(KindCrypto, "ORD-CRYPTO-101", "missing Signature-Alg")
	case "ed25519":
		if len(sig) != ed25519.SignatureSize {
			return nil, newError(KindCrypto, "ORD-CRYPTO-132", "invalid ed25519 signature length")
		}
	case "dilithium3":
		if len(sig) != mode3.SignatureSize {
			return nil, newError(KindCrypto, "ORD-CRYPTO-133", "invalid dilithium3 signature length")
		}
	}
	return sig, nil
}

// Verify checks the record signature. The receiver bytes are re-parsed so
// canonicalization cannot be bypassed with a hand-built Record.
func (r *Record) Verify() error {
	if r == nil {
		return newError(KindCrypto, "ORD-CRYPTO-001", "nil record")
	}
	parsed, err := Parse(r.raw)
	if err != nil {
		return err
	}
	r = parsed

	if r.SignatureAlg() == "" {
		return newError(KindCrypto, "ORD-CRYPTO-101", "missing Signature-Alg")
	}
	if r.HashAlg() == "" {
		return newError(KindCrypto, "ORD-CRYPTO-102", "missing Hash-Alg")
	}
	issuer := r.IssuerKey()
	if issuer == "" {
		return newError(KindCrypto, "ORD-CRYPTO-103", "missing Issuer-Key")
	}
	issuerAlg, _, ok := strings.Cut(issuer, ":")
	if !ok {
		return newError(KindCrypto, "ORD-CRYPTO-111", "invalid Issuer-Key encoding")
	}
	if issuerAlg != r.SignatureAlg() {
		return newError(KindCrypto, "ORD-CRYPTO-121", "Issuer-Key alg does not match Signature-Alg")
	}

	pub, err := r.IssuerPublicKeyBytes()
	if err != nil {
		return err
	}
	sig, err := r.SignatureBytes()
	if err != nil {
		return err
	}
	digest, err := keys.DigestFor(r.HashAlg(), r.signed)
	if err != nil {
		return wrapError(KindCrypto, "ORD-CRYPTO-201", "unsupported Hash-Alg", err)
	}

	switch r.SignatureAlg() {
	case "ed25519":
		if !ed25519.Verify(ed25519.PublicKey(pub), digest, sig) {
			return newError(KindCrypto, "ORD-CRYPTO-401", "signature invalid")
		}
		return nil
	case "dilithium3":
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(pub); err != nil {
			return wrapError(KindCrypto, "ORD-CRYPTO-115", "invalid dilithium3 public key", err)
		}
		if !mode3.Verify(&pk, digest, sig) {
			return newError(KindCrypto, "ORD-CRYPTO-401", "signature invalid")
		}
		return nil
	default:
		return newError(KindCrypto, "ORD-CRYPTO-301", "unsupported Signature-Alg")
	}
}

// SignEd25519 fills doc.Crypto with an ed25519/sha256 signature over the
// signed scope and returns the final canonical bytes.
func SignEd25519(doc Document, pub ed25519.PublicKey, priv ed25519.PrivateKey) ([]byte, error) {
	return signDoc(doc, "ed25519", "sha256",
		"ed25519:"+base64.StdEncoding.EncodeToString(pub),
		func(scope []byte) (string, error) {
			return keys.SignEd25519SHA256(scope, priv), nil
		})
}

// SignDilithium3 fills doc.Crypto with a dilithium3 signature over
// hashAlg(signed scope) and returns the final canonical bytes.
func SignDilithium3(doc Document, hashAlg string, pub *mode3.PublicKey, priv *mode3.PrivateKey) ([]byte, error) {
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, wrapError(KindCrypto, "ORD-CRYPTO-115", "invalid dilithium3 public key", err)
	}
	return signDoc(doc, "dilithium3", hashAlg,
		"dilithium3:"+base64.StdEncoding.EncodeToString(pubBytes),
		func(scope []byte) (string, error) {
			return keys.SignDilithium3(scope, hashAlg, priv)
		})
}

func signDoc(doc Document, sigAlg, hashAlg, issuerKey string, sign func([]byte) (string, error)) ([]byte, error) {
	if doc.Crypto == nil {
		doc.Crypto = make(map[string]string)
	}
	doc.Crypto["Signature-Alg"] = sigAlg
	doc.Crypto["Hash-Alg"] = hashAlg
	doc.Crypto["Issuer-Key"] = issuerKey
	// The Signature value is outside the signed scope, so a placeholder is
	// enough to compute it.
	doc.Crypto["Signature"] = "0"

	pre, err := Render(doc)
	if err != nil {
		return nil, err
	}
	scope, err := signedScope(pre)
	if err != nil {
		return nil, err
	}
	sig, err := sign(scope)
	if err != nil {
		return nil, wrapError(KindCrypto, "ORD-CRYPTO-501", "signing failed", err)
	}
	doc.Crypto["Signature"] = sig
	return Render(doc)
}

func decodeBase64(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
