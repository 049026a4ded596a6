package notifier

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-whatsapp-job-monitor/internal/record"
)

type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{
		api:    api,
		chatID: chatID,
	}, nil
}

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// NotifyJob sends one detected job posting to the configured chat.
func (t *TelegramNotifier) NotifyJob(job record.JobRecord) error {
	msgText := fmt.Sprintf("💼 *%s*\n", escapeMarkdown(job.Title))
	msgText += fmt.Sprintf("🏢 %s\n", escapeMarkdown(job.Company))
	msgText += fmt.Sprintf("📋 %s\n", escapeMarkdown(job.Type))

	if len(job.Keywords) > 0 {
		msgText += fmt.Sprintf("🏷️ %s\n", escapeMarkdown(strings.Join(job.Keywords, ", ")))
	}

	if job.HasImage {
		msgText += "📷 Has attached image\n"
	}

	if job.Description != "" {
		msgText += fmt.Sprintf("📄 %s\n", escapeMarkdown(job.Description))
	}

	msg := tgbotapi.NewMessage(t.chatID, msgText)
	msg.ParseMode = "MarkdownV2"

	_, err := t.api.Send(msg)
	return err
}

func (t *TelegramNotifier) NotifyStatus(message string) error {
	msg := tgbotapi.NewMessage(t.chatID, "ℹ️ "+message)
	_, err := t.api.Send(msg)
	return err
}
