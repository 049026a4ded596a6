// Field extraction for classified job messages
// Pattern ladders with first-match-wins and hard defaults, so Extract is
// total over any string input

package extractor

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"go-whatsapp-job-monitor/internal/keywords"
)

// JobType is the closed employment-type set. Fulltime is the fallback.
type JobType string

const (
	TypeFulltime   JobType = "fulltime"
	TypeContract   JobType = "contract"
	TypeRemote     JobType = "remote"
	TypeParttime   JobType = "parttime"
	TypeInternship JobType = "internship"
)

const (
	defaultTitle   = "IT Position"
	defaultCompany = "Unknown Company"

	maxTitleLen   = 150
	maxCompanyLen = 100
	maxKeywords   = 15
)

// Result holds the fields derived from one message.
type Result struct {
	Title    string
	Company  string
	Type     JobType
	Keywords []string
}

// company patterns, priority order: explicit label first, then "<Name> is hiring"
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:company|organization|firm)[\s:]+([A-Z][A-Za-z\s&]+?)(?:\.|,|\n)`),
	regexp.MustCompile(`(?i)([A-Z][A-Za-z\s&]+?)(?:\s+is\s+(?:hiring|looking|seeking))`),
}

// title patterns, priority order: explicit label first, then phrase ending in a role noun
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:position|role|vacancy|hiring|looking for|seeking)[\s:]+([A-Za-z\s/]+?)(?:\n|\.|,|\||;)`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+?(?:developer|engineer|analyst|designer|manager|administrator|architect|lead))`),
}

// type rules, fixed precedence: contract and remote override the weaker signals
var typeRules = []struct {
	jobType JobType
	terms   []string
}{
	{TypeContract, []string{"contract", "contractor"}},
	{TypeRemote, []string{"remote", "work from home", "wfh"}},
	{TypeParttime, []string{"part-time", "part time", "parttime"}},
	{TypeInternship, []string{"intern", "internship"}},
}

// Extractor derives structured fields from raw message text plus OCR text.
type Extractor struct {
	corpus *keywords.Corpus
}

func New(corpus *keywords.Corpus) *Extractor {
	return &Extractor{corpus: corpus}
}

// Extract pulls title/company/type/keywords out of a message. Title and
// company are matched against the raw text only; keywords and type use the
// combined raw+OCR text. Every sub-step has a default, so this never fails.
func (e *Extractor) Extract(rawText, imageText string) Result {
	combined := keywords.Normalize(rawText + "\n" + imageText)

	return Result{
		Title:    Truncate(firstMatch(titlePatterns, rawText, defaultTitle), maxTitleLen),
		Company:  Truncate(firstMatch(companyPatterns, rawText, defaultCompany), maxCompanyLen),
		Type:     classifyType(combined),
		Keywords: e.findKeywords(combined),
	}
}

// firstMatch walks the pattern ladder and returns the first capturing-group
// match, trimmed. Falls back to def when nothing matches.
func firstMatch(patterns []*regexp.Regexp, text, def string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return def
}

func classifyType(combined string) JobType {
	for _, rule := range typeRules {
		for _, term := range rule.terms {
			if strings.Contains(combined, term) {
				return rule.jobType
			}
		}
	}
	return TypeFulltime
}

// findKeywords collects every domain term present in the combined text,
// deduplicated, capped at 15 in corpus order.
func (e *Extractor) findKeywords(combined string) []string {
	found := []string{}
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, term := range e.corpus.DomainTerms() {
		if len(found) >= maxKeywords {
			break
		}
		if strings.Contains(combined, term) && seen.Add(term) {
			found = append(found, term)
		}
	}
	return found
}

// Truncate cuts s to at most max runes. Byte-slicing would split multi-byte
// characters coming out of OCR.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
