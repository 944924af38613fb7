// internal/submission/payload.go
package submission

import "time"

// Applicant identity. These are fixed for the submission; only the action run
// link varies per invocation.
const (
	applicantName  = "James Thomas"
	applicantEmail = "jamesjacobthomas7@gmail.com"
	resumeLink     = "https://www.linkedin.com/in/james-thomas007/"
	repositoryLink = "https://github.com/jtx007/b12-application"
)

// timestampLayout renders ISO-8601 with millisecond precision and a literal
// 'Z' suffix. The time is forced to UTC before formatting, so the 'Z' is
// always truthful.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t as the endpoint expects: UTC, millisecond
// precision, 'Z' suffix instead of a numeric offset.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// NewRecord builds the application payload for one submission attempt.
// runURL comes from the validated execution context.
func NewRecord(runURL string, now time.Time) Record {
	return Record{
		Timestamp:      FormatTimestamp(now),
		Name:           applicantName,
		Email:          applicantEmail,
		ResumeLink:     resumeLink,
		RepositoryLink: repositoryLink,
		ActionRunLink:  runURL,
	}
}
