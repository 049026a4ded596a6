package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-whatsapp-job-monitor/internal/keywords"
)

func newExtractor() *Extractor {
	return New(keywords.Default())
}

func TestExtractTitle(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "explicit label",
			text:     "Position: Backend Developer.\nApply now",
			expected: "Backend Developer",
		},
		{
			name:     "role noun pattern",
			text:     "Senior Python Developer, remote role",
			expected: "Senior Python Developer",
		},
		{
			name:     "no pattern falls back to default",
			text:     "Great pay, apply today",
			expected: "IT Position",
		},
		{
			name:     "empty text falls back to default",
			text:     "",
			expected: "IT Position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Extract(tt.text, "")
			assert.Equal(t, tt.expected, res.Title)
		})
	}
}

func TestExtractCompany(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "explicit label",
			text:     "Company: Acme Corp. We need a python developer",
			expected: "Acme Corp",
		},
		{
			name:     "is hiring pattern",
			text:     "TechNova is hiring python developers",
			expected: "TechNova",
		},
		{
			name:     "no pattern falls back to default",
			text:     "need a python developer urgently",
			expected: "Unknown Company",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Extract(tt.text, "")
			assert.Equal(t, tt.expected, res.Company)
		})
	}
}

func TestExtractCompanyUsesRawTextOnly(t *testing.T) {
	e := newExtractor()

	//company name only appears in the OCR text, so extraction must miss it
	res := e.Extract("need a python developer", "TechNova is hiring")
	assert.Equal(t, "Unknown Company", res.Company)
}

func TestClassifyTypePrecedence(t *testing.T) {
	e := newExtractor()

	tests := []struct {
		name     string
		text     string
		expected JobType
	}{
		{"contract wins over remote", "Need a contract DevOps engineer, remote, urgent", TypeContract},
		{"remote", "Senior Python Developer, remote role, send CV", TypeRemote},
		{"work from home counts as remote", "python developer, work from home", TypeRemote},
		{"parttime", "part-time web developer wanted", TypeParttime},
		{"internship", "internship for junior developer", TypeInternship},
		{"default fulltime", "python developer wanted, Nairobi office", TypeFulltime},
		{"type terms in image text count too", "python developer wanted", TypeContract},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imageText := ""
			if tt.name == "type terms in image text count too" {
				imageText = "6 month contract"
			}
			res := e.Extract(tt.text, imageText)
			assert.Equal(t, tt.expected, res.Type)
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	e := newExtractor()

	res := e.Extract("Hiring python developer with docker and kubernetes", "aws experience a plus")

	assert.Contains(t, res.Keywords, "python")
	assert.Contains(t, res.Keywords, "docker")
	assert.Contains(t, res.Keywords, "kubernetes")
	assert.Contains(t, res.Keywords, "aws", "keywords should come from the combined raw+ocr text")

	corpus := keywords.Default()
	for _, kw := range res.Keywords {
		assert.True(t, corpus.IsDomainTerm(kw), "keyword %q must be a corpus term", kw)
	}
}

func TestExtractKeywordsCappedAt15(t *testing.T) {
	e := newExtractor()

	text := "hiring: python java javascript typescript php ruby rust swift kotlin scala react angular vue django flask spring docker kubernetes aws azure"
	res := e.Extract(text, "")

	assert.Len(t, res.Keywords, 15)
}

func TestExtractTruncation(t *testing.T) {
	e := newExtractor()

	longTitle := "Position: " + strings.Repeat("Very Long Role Name ", 20) + "Developer."
	res := e.Extract(longTitle, "")
	assert.LessOrEqual(t, len([]rune(res.Title)), 150)

	longCompany := "Company: " + strings.Repeat("Endless Holdings And ", 20) + "Sons.\nhiring python"
	res = e.Extract(longCompany, "")
	assert.LessOrEqual(t, len([]rune(res.Company)), 100)
}

func TestExtractNeverPanics(t *testing.T) {
	e := newExtractor()

	inputs := []string{
		"",
		"   \n\t  ",
		"no capital letters at all, just a python developer needed",
		strings.Repeat("x", 10000),
		"🎉🎉🎉 emoji only 🎉🎉🎉",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			res := e.Extract(input, input)
			assert.NotEmpty(t, res.Title)
			assert.NotEmpty(t, res.Company)
			assert.NotEmpty(t, res.Type)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abc", Truncate("abcde", 3))
	//rune boundaries, not byte boundaries
	assert.Equal(t, "hé", Truncate("héllo", 2))
}
