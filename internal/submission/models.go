// internal/submission/models.go
package submission

import (
	"application-submitter/internal/common/errors"
)

// Record is the fixed-shape application payload. All fields are required
// strings; the record is never mutated after construction.
type Record struct {
	Timestamp      string `json:"timestamp"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ResumeLink     string `json:"resume_link"`
	RepositoryLink string `json:"repository_link"`
	ActionRunLink  string `json:"action_run_link"`
}

// SignedRequest pairs the canonical body with its signature header value.
// Body is transmitted byte-for-byte as signed; re-serializing it would
// invalidate the signature.
type SignedRequest struct {
	Body      []byte
	Signature string
}

// Response captures the status and body of the single HTTP exchange.
type Response struct {
	StatusCode int
	Body       []byte
}

// Result is the confirmed-success outcome. Receipt keeps the decoded JSON
// value as-is: presence is required, the type deliberately is not.
type Result struct {
	Receipt interface{}
}

// Outcome is the tagged end state of a run: a receipt, or a terminal error.
type Outcome struct {
	Receipt interface{}
	Err     *errors.StandardError
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}
