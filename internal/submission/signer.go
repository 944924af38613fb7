// internal/submission/signer.go
package submission

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// signaturePrefix tags the algorithm in the header value, GitHub-webhook style.
const signaturePrefix = "sha256="

// Sign computes the HMAC-SHA256 of body keyed by secret and renders it as
// "sha256=<64 lowercase hex>". Pure function: same key and bytes always give
// the same signature.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// NewSignedRequest canonicalizes the record and signs the resulting bytes.
// The returned Body is the exact byte sequence the signature covers.
func NewSignedRequest(secret string, rec Record) (*SignedRequest, error) {
	body, err := CanonicalJSON(rec)
	if err != nil {
		return nil, err
	}
	return &SignedRequest{
		Body:      body,
		Signature: Sign(secret, body),
	}, nil
}
