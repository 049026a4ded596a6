// Pipeline orchestrator: each message is processed to completion
// (classify -> extract -> build -> persist -> notify -> mark seen) before
// the next is considered

package monitor

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-whatsapp-job-monitor/internal/classifier"
	"go-whatsapp-job-monitor/internal/dedup"
	"go-whatsapp-job-monitor/internal/extractor"
	"go-whatsapp-job-monitor/internal/notifier"
	"go-whatsapp-job-monitor/internal/ocr"
	"go-whatsapp-job-monitor/internal/record"
	"go-whatsapp-job-monitor/internal/scraper"
	"go-whatsapp-job-monitor/internal/store"
)

type Monitor struct {
	source      scraper.Source
	textFromImg ocr.TextExtractor
	classifier  *classifier.Classifier
	extractor   *extractor.Extractor
	seen        *dedup.SeenSet
	store       *store.JobStore
	notifier    notifier.Notifier

	pollInterval time.Duration
}

func New(
	source scraper.Source,
	textFromImg ocr.TextExtractor,
	cls *classifier.Classifier,
	ext *extractor.Extractor,
	seen *dedup.SeenSet,
	st *store.JobStore,
	ntf notifier.Notifier,
	pollInterval time.Duration,
) *Monitor {
	return &Monitor{
		source:       source,
		textFromImg:  textFromImg,
		classifier:   cls,
		extractor:    ext,
		seen:         seen,
		store:        st,
		notifier:     ntf,
		pollInterval: pollInterval,
	}
}

// Run scans the reachable history once, then polls for new messages until
// ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	log.Printf("🔎 Scanning existing messages on %s...", m.source.Name())
	history, err := m.source.ScanHistory(ctx)
	if err != nil {
		return fmt.Errorf("scanning history: %w", err)
	}

	found := 0
	for _, msg := range history {
		ok, err := m.Process(msg)
		if err != nil {
			return err
		}
		if ok {
			found++
		}
	}
	log.Printf("✅ History scan complete: %d IT jobs in %d messages", found, len(history))

	log.Printf("👀 Monitoring new messages (every %v). Press Ctrl+C to stop.", m.pollInterval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("🏁 Monitoring stopped. Total jobs this run: %d", m.store.Count())
			return nil
		case <-time.After(m.pollInterval):
			messages, err := m.source.Poll(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Printf("⚠️ Poll error: %v", err)
				continue
			}
			for _, msg := range messages {
				if _, err := m.Process(msg); err != nil {
					log.Printf("⚠️ Failed to process message: %v", err)
				}
			}
		}
	}
}

// Process runs one message through the full pipeline. Returns true when a
// job record was produced. The only error path is the persistence sink -
// classification and extraction are total.
func (m *Monitor) Process(msg scraper.Message) (bool, error) {
	if m.seen.HasProcessed(msg.ID) {
		return false, nil
	}

	imageText := ""
	if msg.HasImage {
		text, err := m.textFromImg.ExtractText(msg.ImagePath)
		if err != nil {
			//OCR is best-effort: the message is still inspected on its own text
			log.Printf("⚠️ OCR failed for %s: %v", msg.ImagePath, err)
		} else {
			imageText = text
			if imageText != "" {
				log.Println("📷 Image text extracted")
			}
		}
	}

	combined := msg.Text + "\n" + imageText

	if !m.classifier.IsJobPosting(combined) {
		//rejected messages count as processed too
		m.seen.MarkProcessed(msg.ID)
		return false, nil
	}

	log.Printf("🎯 IT job detected: %s...", extractor.Truncate(msg.Text, 50))

	res := m.extractor.Extract(msg.Text, imageText)
	job := record.Build(m.store.NextID(), res, record.Meta{
		RawText:   msg.Text,
		ImageText: imageText,
		HasImage:  msg.HasImage,
		ImagePath: msg.ImagePath,
	})

	m.store.Append(job)
	//mark before saving so a failed save cannot append the same message twice
	m.seen.MarkProcessed(msg.ID)
	if err := m.store.Save(); err != nil {
		return false, fmt.Errorf("saving jobs: %w", err)
	}

	if err := m.notifier.NotifyJob(job); err != nil {
		log.Printf("⚠️ Failed to send notification: %v", err)
	}

	log.Printf("💾 Saved: %s at %s (total %d)", job.Title, job.Company, m.store.Count())
	return true, nil
}
