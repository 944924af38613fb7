// internal/submission/canonical.go
package submission

import (
	"bytes"
	"encoding/json"
)

// CanonicalJSON serializes the record to the byte sequence that gets signed
// and transmitted: object keys sorted lexicographically, no insignificant
// whitespace, non-ASCII and HTML characters kept as literal UTF-8. Encoding
// the same record twice yields byte-identical output; the receiver relies on
// that to re-derive the signature.
func CanonicalJSON(rec Record) ([]byte, error) {
	// encoding/json emits map keys in sorted order.
	fields := map[string]string{
		"timestamp":       rec.Timestamp,
		"name":            rec.Name,
		"email":           rec.Email,
		"resume_link":     rec.ResumeLink,
		"repository_link": rec.RepositoryLink,
		"action_run_link": rec.ActionRunLink,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fields); err != nil {
		return nil, err
	}

	// Encode appends a newline that is not part of the canonical form.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
