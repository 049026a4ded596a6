package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-whatsapp-job-monitor/internal/browser"
	"go-whatsapp-job-monitor/internal/classifier"
	"go-whatsapp-job-monitor/internal/config"
	"go-whatsapp-job-monitor/internal/dedup"
	"go-whatsapp-job-monitor/internal/extractor"
	"go-whatsapp-job-monitor/internal/keywords"
	"go-whatsapp-job-monitor/internal/monitor"
	"go-whatsapp-job-monitor/internal/notifier"
	"go-whatsapp-job-monitor/internal/ocr"
	"go-whatsapp-job-monitor/internal/scraper/whatsapp"
	"go-whatsapp-job-monitor/internal/store"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Group: %s", cfg.GroupName)

	//build the keyword corpus once, pass it everywhere
	corpus := keywords.Default()
	log.Printf("📚 Corpus: %d domain terms, %d job-signal terms",
		len(corpus.DomainTerms()), len(corpus.JobSignalTerms()))

	//load previously saved jobs so ids keep increasing across restarts
	jobStore := store.New(cfg.JobsFile)
	jobStore.Load()
	log.Printf("📁 Loaded %d existing jobs from %s", jobStore.Count(), cfg.JobsFile)

	//optional Telegram reporting
	var ntf notifier.Notifier = notifier.NewNop()
	if cfg.TelegramToken != "" {
		bot, err := notifier.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram bot: %v", err)
		}
		ntf = bot
		log.Println("🤖 Telegram reporting enabled")
	}

	//OCR for attached images
	var textFromImg ocr.TextExtractor = ocr.NewNop()
	if cfg.OCREnabled {
		textFromImg = ocr.NewTesseract()
		log.Println("🔤 OCR enabled (tesseract)")
	}

	//cancel on Ctrl+C
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Println("🚀 Starting WhatsApp IT Job Monitor...")

	//launch browser with the persistent session dir (QR login survives restarts)
	mgr, err := browser.NewPersistent(cfg.SessionDir)
	if err != nil {
		log.Fatalf("❌ Failed to launch browser: %v", err)
	}
	defer mgr.Close()

	page, err := mgr.Page()
	if err != nil {
		log.Fatalf("❌ Failed to open page: %v", err)
	}
	log.Println("✅ Browser initialized")

	source := whatsapp.New(cfg, page)
	if err := source.Open(ctx); err != nil {
		log.Fatalf("❌ Failed to open group: %v", err)
	}

	m := monitor.New(
		source,
		textFromImg,
		classifier.New(corpus),
		extractor.New(corpus),
		dedup.NewSeenSet(),
		jobStore,
		ntf,
		cfg.PollInterval,
	)

	if err := m.Run(ctx); err != nil {
		log.Fatalf("❌ Monitor stopped with error: %v", err)
	}
}
