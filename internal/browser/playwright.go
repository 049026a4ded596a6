package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Manager wraps a persistent Chromium context. The session dir keeps the
// WhatsApp Web login (QR scan) alive across restarts.
type Manager struct {
	pw  *playwright.Playwright
	ctx playwright.BrowserContext
}

func NewPersistent(sessionDir string) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}

	ctx, err := pw.Chromium.LaunchPersistentContext(sessionDir, playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless: playwright.Bool(false),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--no-first-run",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launching persistent context: %w", err)
	}

	return &Manager{pw: pw, ctx: ctx}, nil
}

// Page returns the context's first page, creating one if needed.
func (m *Manager) Page() (playwright.Page, error) {
	if pages := m.ctx.Pages(); len(pages) > 0 {
		return pages[0], nil
	}
	return m.ctx.NewPage()
}

func (m *Manager) Close() error {
	if err := m.ctx.Close(); err != nil {
		m.pw.Stop()
		return err
	}
	return m.pw.Stop()
}
