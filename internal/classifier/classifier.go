package classifier

import (
	"go-whatsapp-job-monitor/internal/keywords"
)

// Classifier decides whether free-form message text is an IT job posting.
// It is a pure rule-based filter over the keyword corpus, no state.
type Classifier struct {
	corpus *keywords.Corpus
}

func New(corpus *keywords.Corpus) *Classifier {
	return &Classifier{corpus: corpus}
}

// IsJobPosting returns true iff the text contains at least one job-signal
// term AND at least one domain term. Technology talk without hiring language
// is not a posting, and neither is hiring language without technology.
func (c *Classifier) IsJobPosting(combinedText string) bool {
	text := keywords.Normalize(combinedText)

	//must contain hiring/employment language
	if !c.corpus.HasJobSignalTerm(text) {
		return false
	}

	//must contain IT vocabulary
	if !c.corpus.HasDomainTerm(text) {
		return false
	}

	return true
}
