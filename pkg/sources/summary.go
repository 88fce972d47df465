package sources

import "fmt"

type SummaryStatus int

const (
	SummaryFound SummaryStatus = iota
	SummaryNoDescription
	SummaryNotFound
	SummaryMissingCredentials
	SummaryFailed
)

const (
	NoDescriptionText      = "No summary available."
	NotFoundText           = "No summary found for this book."
	MissingCredentialsText = "API key not found! Please set it in your environment variables."
)

func (s SummaryStatus) String() string {
	switch s {
	case SummaryFound:
		return "found"
	case SummaryNoDescription:
		return "no-description"
	case SummaryNotFound:
		return "not-found"
	case SummaryMissingCredentials:
		return "missing-credentials"
	case SummaryFailed:
		return "failed"
	default:
		return fmt.Sprintf("SummaryStatus(%d)", int(s))
	}
}

// Summary is the outcome of a lookup. Text is only set for SummaryFound and
// Err only for SummaryFailed.
type Summary struct {
	Title  string
	Status SummaryStatus
	Text   string
	Err    error
}

func (s Summary) OK() bool {
	return s.Status == SummaryFound
}

// String is the text shown to the user for every outcome.
func (s Summary) String() string {
	switch s.Status {
	case SummaryFound:
		return s.Text
	case SummaryNoDescription:
		return NoDescriptionText
	case SummaryNotFound:
		return NotFoundText
	case SummaryMissingCredentials:
		return MissingCredentialsText
	default:
		reason := "unknown error"
		if s.Err != nil {
			reason = s.Err.Error()
		}
		return fmt.Sprintf("API Error: %s", reason)
	}
}

func (s Summary) cacheable() bool {
	switch s.Status {
	case SummaryFound, SummaryNoDescription, SummaryNotFound:
		return true
	default:
		return false
	}
}
