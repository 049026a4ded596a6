package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-whatsapp-job-monitor/internal/keywords"
)

func TestIsJobPosting(t *testing.T) {
	c := New(keywords.Default())

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "job signal plus domain term",
			text:     "We are urgently hiring a Senior Python Developer at Acme Corp, remote role, send your CV",
			expected: true,
		},
		{
			name:     "neither signal nor domain term",
			text:     "Happy birthday!",
			expected: false,
		},
		{
			name:     "domain term without hiring language",
			text:     "Just pushed my docker tutorial, check the repo",
			expected: false,
		},
		{
			name:     "hiring language without domain term",
			text:     "Hiring a driver and a cleaner, send applications by Friday",
			expected: false,
		},
		{
			name:     "case insensitive",
			text:     "HIRING: PYTHON DEVELOPER",
			expected: true,
		},
		{
			name:     "empty text",
			text:     "",
			expected: false,
		},
		{
			name:     "terms split across raw and ocr halves of combined text",
			text:     "Check this out\nNow Hiring: Backend Engineer, apply today",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.IsJobPosting(tt.text))
		})
	}
}
