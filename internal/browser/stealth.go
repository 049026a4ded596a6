package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay waits for a random duration between min and max milliseconds.
// WhatsApp Web flags clients that act on exact timers.
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := time.Duration(rand.Intn(max-min)+min) * time.Millisecond
	time.Sleep(duration)
}

// ScrollElementToTop scrolls the element matching selector to its top,
// which makes WhatsApp lazy-load older messages into the conversation panel.
func ScrollElementToTop(page playwright.Page, selector string) error {
	_, err := page.Evaluate(
		`(sel) => { const el = document.querySelector(sel); if (el) el.scrollTop = 0; }`,
		selector,
	)
	return err
}
