// Define the boundary between browser scraping and the classification
// pipeline: the pipeline only ever sees Messages

package scraper

import (
	"context"
)

// Message is one raw chat message pulled out of the web client. ID is an
// opaque identifier synthesized by the source; ImagePath is set when an
// attached image was screenshotted to disk.
type Message struct {
	ID        string
	Text      string
	HasImage  bool
	ImagePath string
}

// Source yields raw messages from a chat platform.
type Source interface {
	//ScanHistory loads and returns the currently reachable message history
	ScanHistory(ctx context.Context) ([]Message, error)

	//Poll returns messages that arrived since the previous Poll/ScanHistory
	Poll(ctx context.Context) ([]Message, error)

	//Name is the platform name (WhatsApp, ...)
	Name() string
}
