package notifier

import (
	"go-whatsapp-job-monitor/internal/record"
)

// Notifier reports newly detected job records to an external channel.
type Notifier interface {
	NotifyJob(job record.JobRecord) error
	NotifyStatus(message string) error
}

// Nop is used when no Telegram credentials are configured.
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (n *Nop) NotifyJob(record.JobRecord) error { return nil }

func (n *Nop) NotifyStatus(string) error { return nil }
