// JobRecord is the unit of output: one classified posting, created once and
// never mutated. The JSON field names are the on-disk contract consumed by
// the API server and web client.

package record

import (
	"time"

	"go-whatsapp-job-monitor/internal/extractor"
)

const (
	maxDescriptionLen = 500
	maxFullTextLen    = 1000
)

type JobRecord struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	HasImage    bool     `json:"hasImage"`
	ImageURL    string   `json:"imageUrl"`
	Type        string   `json:"type"`
	Keywords    []string `json:"keywords"`
	FullText    string   `json:"full_text"`
}

// Meta carries message metadata the extractor does not see.
type Meta struct {
	RawText   string
	ImageText string
	HasImage  bool
	ImagePath string
}

// Build assembles a record from extractor output and message metadata.
// nextID is the 1-based sequence number assigned at append time. Date is the
// record creation time, not the original message time - the source does not
// expose message timestamps.
func Build(nextID int, res extractor.Result, meta Meta) JobRecord {
	imageURL := ""
	if meta.HasImage {
		imageURL = meta.ImagePath
	}

	keywords := res.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return JobRecord{
		ID:          nextID,
		Title:       res.Title,
		Company:     res.Company,
		Description: extractor.Truncate(meta.RawText, maxDescriptionLen),
		Date:        time.Now().Format(time.RFC3339),
		HasImage:    meta.HasImage,
		ImageURL:    imageURL,
		Type:        string(res.Type),
		Keywords:    keywords,
		FullText:    extractor.Truncate(meta.RawText+"\n"+meta.ImageText, maxFullTextLen),
	}
}
