// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Monitoring target
	GroupName string `yaml:"group_name"`

	//Paths
	JobsFile           string `yaml:"jobs_file"`
	ScreenshotsDir     string `yaml:"screenshots_dir"`
	ExtractedImagesDir string `yaml:"extracted_images_dir"`
	SessionDir         string `yaml:"session_dir"`

	//Pipeline tuning
	PollInterval   time.Duration `yaml:"poll_interval"`
	HistoryScrolls int           `yaml:"history_scrolls"`
	OCREnabled     bool          `yaml:"ocr_enabled"`

	//API server
	ServerPort     string   `yaml:"server_port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps"`

	//Optional Telegram reporting
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{OCREnabled: true}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if group := os.Getenv("WHATSAPP_GROUP_NAME"); group != "" {
		cfg.GroupName = group
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.ServerPort = port
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.JobsFile == "" {
		cfg.JobsFile = "jobs_data.json"
	}

	if cfg.ScreenshotsDir == "" {
		cfg.ScreenshotsDir = "screenshots"
	}

	if cfg.ExtractedImagesDir == "" {
		cfg.ExtractedImagesDir = "extracted_images"
	}

	if cfg.SessionDir == "" {
		cfg.SessionDir = "whatsapp_session"
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = 2 * time.Second
	}

	if cfg.HistoryScrolls == 0 {
		cfg.HistoryScrolls = 10
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 10
	}

	//Validate required fields
	if cfg.GroupName == "" {
		log.Fatal("group_name is required (set it in configs/config.yaml or WHATSAPP_GROUP_NAME)")
	}

	return cfg
}
