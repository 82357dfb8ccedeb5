// Package cidutil derives content identifiers for canonical document bytes.
//
// Records, reports and policies all use the same addressing scheme: CIDv1
// with the "raw" multicodec and a sha2-256 multihash over the exact bytes.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CIDv1RawSHA256 returns the CIDv1 string for data.
func CIDv1RawSHA256(data []byte) string {
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		// multihash.Sum only errors for invalid parameters; with SHA2_256 and
		// default length this is unreachable.
		return ""
	}
	return id.String()
}

// CIDv1RawSHA256CID returns the CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
