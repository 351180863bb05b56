package pipeline

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const digestSize = 8

// DeriveBucketName maps a tenant identifier to its staging bucket name:
// an 8-byte BLAKE2b digest of the identifier in lowercase hex, joined
// with the suffix as "{digest}-{suffix}". The digest keeps the raw
// identifier out of externally visible names while staying stable
// across runs, so reruns always address the same bucket.
func DeriveBucketName(tenantID, suffix string) (string, error) {
	if tenantID == "" {
		return "", &ConfigurationError{Reason: "tenant project ID is not set"}
	}

	h, err := blake2b.New(digestSize, nil)
	if err != nil {
		return "", err
	}
	h.Write([]byte(tenantID))

	return hex.EncodeToString(h.Sum(nil)) + "-" + suffix, nil
}
