// Drive WhatsApp Web in a real browser
// Wait for QR login, open the group, read message history, poll for new ones
// Screenshot attached images for OCR

package whatsapp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-whatsapp-job-monitor/internal/browser"
	"go-whatsapp-job-monitor/internal/config"
	"go-whatsapp-job-monitor/internal/scraper"
)

const whatsappURL = "https://web.whatsapp.com"

// Selectors for the WhatsApp Web DOM. These track whatever the web client
// currently renders and break when WhatsApp ships a redesign.
const (
	selSearchBox         = `div[contenteditable="true"][data-tab="3"]`
	selConversationPanel = `[data-testid="conversation-panel-body"]`
	selMessages          = `div[class*="message-"]`
	selMessageText       = `span.selectable-text`
	selMessageImage      = `img[src*="blob:"], img[src*="http"]`
)

// chatListSelectors: any of these appearing means the QR scan succeeded
var chatListSelectors = []string{
	`[data-testid="chat-list"]`,
	`#pane-side`,
	`[role="navigation"]`,
}

type Scraper struct {
	cfg  *config.Config
	page playwright.Page

	//message count at last poll, so Poll only returns the tail
	lastCount int
	//running counter for live message ids
	liveSeq int
}

func New(cfg *config.Config, page playwright.Page) *Scraper {
	return &Scraper{cfg: cfg, page: page}
}

func (s *Scraper) Name() string {
	return "WhatsApp"
}

// Open navigates to WhatsApp Web, waits for the QR scan if the session is
// not logged in yet, and opens the configured group chat.
func (s *Scraper) Open(ctx context.Context) error {
	log.Println("🌐 Navigating to WhatsApp Web...")
	if _, err := s.page.Goto(whatsappURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(60000),
	}); err != nil {
		return fmt.Errorf("opening whatsapp web: %w", err)
	}

	log.Println("📱 If a QR code is shown, scan it with your phone (Linked Devices)")
	if err := s.waitForLogin(ctx); err != nil {
		return err
	}
	log.Println("✅ WhatsApp Web loaded")

	return s.openGroup(ctx)
}

// waitForLogin polls the chat-list selectors until one appears. The QR scan
// is a human step, so the timeout is generous.
func (s *Scraper) waitForLogin(ctx context.Context) error {
	deadline := time.Now().Add(5 * time.Minute)
	for time.Now().Before(deadline) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for _, sel := range chatListSelectors {
			count, err := s.page.Locator(sel).Count()
			if err == nil && count > 0 {
				//give the client a moment to finish rendering chats
				browser.RandomDelay(2000, 3000)
				return nil
			}
		}
		time.Sleep(2 * time.Second)
	}
	return fmt.Errorf("whatsapp web did not load within 5 minutes (QR not scanned?)")
}

func (s *Scraper) openGroup(ctx context.Context) error {
	log.Printf("🔍 Searching for group: %s", s.cfg.GroupName)

	searchBox := s.page.Locator(selSearchBox).First()
	if err := searchBox.Click(); err != nil {
		return fmt.Errorf("clicking search box: %w", err)
	}
	browser.RandomDelay(500, 1000)

	if err := searchBox.Fill(s.cfg.GroupName); err != nil {
		return fmt.Errorf("typing group name: %w", err)
	}
	//wait for search results to render
	browser.RandomDelay(2500, 3500)

	//click the chat whose title matches the group name exactly
	result := s.page.Locator(fmt.Sprintf(`#pane-side span[title=%q]`, s.cfg.GroupName)).First()
	if err := result.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(10000)}); err != nil {
		return fmt.Errorf("group %q not found in search results: %w", s.cfg.GroupName, err)
	}

	log.Println("✅ Group opened")
	browser.RandomDelay(1500, 2500)
	return nil
}

// ScanHistory scrolls the conversation panel up to load older messages, then
// returns everything currently rendered. Ids are position-based
// (history_<index>), stable only within this run.
func (s *Scraper) ScanHistory(ctx context.Context) ([]scraper.Message, error) {
	log.Println("📜 Scrolling to load message history...")
	for i := 0; i < s.cfg.HistoryScrolls; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err := browser.ScrollElementToTop(s.page, selConversationPanel); err != nil {
			log.Printf("⚠️ Could not scroll, scanning visible messages only: %v", err)
			break
		}
		browser.RandomDelay(800, 1200)
	}

	locators, err := s.page.Locator(selMessages).All()
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	log.Printf("📋 Found %d messages to scan", len(locators))

	var messages []scraper.Message
	for i, loc := range locators {
		msg, ok := s.readMessage(loc, fmt.Sprintf("history_%d", i))
		if ok {
			messages = append(messages, msg)
		}
	}

	s.lastCount = len(locators)
	return messages, nil
}

// Poll returns messages rendered since the last ScanHistory/Poll. Ids are
// timestamp+sequence based.
func (s *Scraper) Poll(ctx context.Context) ([]scraper.Message, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	locators, err := s.page.Locator(selMessages).All()
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	if len(locators) <= s.lastCount {
		return nil, nil
	}

	var messages []scraper.Message
	for _, loc := range locators[s.lastCount:] {
		id := fmt.Sprintf("%d_%d", time.Now().UnixMilli(), s.liveSeq)
		s.liveSeq++
		msg, ok := s.readMessage(loc, id)
		if ok {
			messages = append(messages, msg)
		}
	}

	s.lastCount = len(locators)
	return messages, nil
}

// readMessage extracts text and, when present, screenshots the attached
// image. Messages without text are skipped; image failures degrade to a
// text-only message.
func (s *Scraper) readMessage(loc playwright.Locator, id string) (scraper.Message, bool) {
	msg := scraper.Message{ID: id}

	textLoc := loc.Locator(selMessageText).First()
	if count, err := textLoc.Count(); err != nil || count == 0 {
		return msg, false
	}
	text, err := textLoc.InnerText(playwright.LocatorInnerTextOptions{Timeout: playwright.Float(3000)})
	if err != nil || text == "" {
		return msg, false
	}
	msg.Text = text

	imgLoc := loc.Locator(selMessageImage).First()
	if count, err := imgLoc.Count(); err == nil && count > 0 {
		if path, err := s.saveImage(imgLoc, id); err != nil {
			log.Printf("⚠️ Failed to capture message image: %v", err)
		} else {
			msg.HasImage = true
			msg.ImagePath = path
		}
	}

	return msg, true
}

// saveImage screenshots the image element into the screenshots dir.
func (s *Scraper) saveImage(img playwright.Locator, id string) (string, error) {
	if err := os.MkdirAll(s.cfg.ScreenshotsDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.ScreenshotsDir, fmt.Sprintf("job_%s.png", id))
	if _, err := img.Screenshot(playwright.LocatorScreenshotOptions{
		Path: playwright.String(path),
	}); err != nil {
		return "", err
	}
	return path, nil
}
