package monitor

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-whatsapp-job-monitor/internal/classifier"
	"go-whatsapp-job-monitor/internal/dedup"
	"go-whatsapp-job-monitor/internal/extractor"
	"go-whatsapp-job-monitor/internal/keywords"
	"go-whatsapp-job-monitor/internal/notifier"
	"go-whatsapp-job-monitor/internal/record"
	"go-whatsapp-job-monitor/internal/scraper"
	"go-whatsapp-job-monitor/internal/store"
)

// fakeSource returns canned history, then nothing on Poll.
type fakeSource struct {
	history []scraper.Message
}

func (f *fakeSource) ScanHistory(context.Context) ([]scraper.Message, error) {
	return f.history, nil
}

func (f *fakeSource) Poll(context.Context) ([]scraper.Message, error) {
	return nil, nil
}

func (f *fakeSource) Name() string { return "fake" }

// fakeOCR maps image paths to canned text.
type fakeOCR struct {
	texts map[string]string
}

func (f *fakeOCR) ExtractText(path string) (string, error) {
	return f.texts[path], nil
}

// recordingNotifier records notified jobs.
type recordingNotifier struct {
	jobs []record.JobRecord
}

func (r *recordingNotifier) NotifyJob(job record.JobRecord) error {
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *recordingNotifier) NotifyStatus(string) error { return nil }

func newMonitor(t *testing.T, src scraper.Source, ocrTexts map[string]string, ntf notifier.Notifier) (*Monitor, *store.JobStore) {
	t.Helper()
	corpus := keywords.Default()
	st := store.New(filepath.Join(t.TempDir(), "jobs_data.json"))
	m := New(
		src,
		&fakeOCR{texts: ocrTexts},
		classifier.New(corpus),
		extractor.New(corpus),
		dedup.NewSeenSet(),
		st,
		ntf,
		10*time.Millisecond,
	)
	return m, st
}

func TestProcessProducesRecord(t *testing.T) {
	ntf := &recordingNotifier{}
	m, st := newMonitor(t, &fakeSource{}, nil, ntf)

	ok, err := m.Process(scraper.Message{
		ID:   "history_0",
		Text: "TechNova is hiring a Senior Python Developer, remote role, send your CV",
	})

	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, 1, st.Count())

	job, found := st.Get(1)
	require.True(t, found)
	assert.Equal(t, "TechNova", job.Company)
	assert.Equal(t, "remote", job.Type)
	assert.Contains(t, job.Keywords, "python")

	require.Len(t, ntf.jobs, 1)
	assert.Equal(t, job.ID, ntf.jobs[0].ID)
}

func TestProcessRejectsNonJob(t *testing.T) {
	m, st := newMonitor(t, &fakeSource{}, nil, notifier.NewNop())

	ok, err := m.Process(scraper.Message{ID: "history_0", Text: "Happy birthday!"})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Count())
}

func TestProcessSameMessageTwiceIsNoOp(t *testing.T) {
	m, st := newMonitor(t, &fakeSource{}, nil, notifier.NewNop())

	msg := scraper.Message{
		ID:   "history_0",
		Text: "We are hiring a python developer, apply now",
	}

	ok, err := m.Process(msg)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Process(msg)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Count(), "record list length must be unchanged")
}

func TestProcessSaveFailureDoesNotAppendTwice(t *testing.T) {
	corpus := keywords.Default()
	//parent directory never exists, so every Save fails
	st := store.New(filepath.Join(t.TempDir(), "missing", "jobs_data.json"))
	m := New(
		&fakeSource{},
		&fakeOCR{},
		classifier.New(corpus),
		extractor.New(corpus),
		dedup.NewSeenSet(),
		st,
		notifier.NewNop(),
		10*time.Millisecond,
	)

	msg := scraper.Message{
		ID:   "history_0",
		Text: "We are hiring a python developer, apply now",
	}

	ok, err := m.Process(msg)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Count())

	//the message counts as processed, a retry must not append again
	ok, err = m.Process(msg)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Count())
}

func TestProcessUsesOCRTextForClassification(t *testing.T) {
	ocrTexts := map[string]string{
		"screenshots/job_history_0.png": "Now hiring: python developer, contract",
	}
	m, st := newMonitor(t, &fakeSource{}, ocrTexts, notifier.NewNop())

	//message text alone has neither a job-signal nor a domain term
	ok, err := m.Process(scraper.Message{
		ID:        "history_0",
		Text:      "Check this out",
		HasImage:  true,
		ImagePath: "screenshots/job_history_0.png",
	})

	require.NoError(t, err)
	assert.True(t, ok)

	job, found := st.Get(1)
	require.True(t, found)
	assert.True(t, job.HasImage)
	assert.Equal(t, "screenshots/job_history_0.png", job.ImageURL)
	assert.Equal(t, "contract", job.Type, "type must consider OCR text")
	assert.Equal(t, "Check this out", job.Description, "description uses raw text only")
}

func TestRunScansHistoryThenStopsOnCancel(t *testing.T) {
	src := &fakeSource{history: []scraper.Message{
		{ID: "history_0", Text: "We are hiring a python developer, apply now"},
		{ID: "history_1", Text: "Lunch anyone?"},
	}}
	m, st := newMonitor(t, src, nil, notifier.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Count())
}
