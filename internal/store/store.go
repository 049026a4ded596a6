// JobStore owns the in-memory record list and the persisted JSON file.
// The monitor process is the only writer; the API server holds its own
// store instance and only ever reloads.

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go-whatsapp-job-monitor/internal/record"
)

type JobStore struct {
	mu       sync.RWMutex
	filePath string
	jobs     []record.JobRecord
}

func New(filePath string) *JobStore {
	return &JobStore{
		filePath: filePath,
		jobs:     []record.JobRecord{},
	}
}

// Load reads the persisted file into memory. A missing or unparseable file
// yields an empty list, never an error - the API always serves a well-formed
// (possibly empty) response.
func (s *JobStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = []record.JobRecord{}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return
	}

	var jobs []record.JobRecord
	if err := json.Unmarshal(data, &jobs); err != nil {
		return
	}
	if jobs != nil {
		s.jobs = jobs
	}
}

// Save serializes the whole list as an indented JSON array, written to a temp
// file and renamed over the target so the watching consumer never observes a
// partial write. Disk errors propagate - the caller decides retry policy.
func (s *JobStore) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.jobs, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshaling jobs: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, ".jobs-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing jobs file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing jobs file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing jobs file: %w", err)
	}
	return nil
}

// Append adds a record to the list. The record's id must already be NextID().
func (s *JobStore) Append(job record.JobRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

// NextID returns the id the next appended record should carry.
func (s *JobStore) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs) + 1
}

// All returns a copy of the record list.
func (s *JobStore) All() []record.JobRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.JobRecord, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Get returns the record with the given id, or false.
func (s *JobStore) Get(id int) (record.JobRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return record.JobRecord{}, false
}

// Count returns the number of records.
func (s *JobStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// Query holds the /api/jobs filter parameters.
type Query struct {
	DateFrom string
	DateTo   string
	Search   string
	Type     string
}

// Filter applies the query to the record list. Date bounds are inclusive;
// records with unparseable dates are excluded from date-filtered results.
// Search is a case-insensitive substring over title, description and company.
func (s *JobStore) Filter(q Query) []record.JobRecord {
	jobs := s.All()

	if from, err := parseDate(q.DateFrom); q.DateFrom != "" && err == nil {
		jobs = filterJobs(jobs, func(j record.JobRecord) bool {
			d, err := parseDate(j.Date)
			return err == nil && !d.Before(from)
		})
	}

	if to, err := parseDate(q.DateTo); q.DateTo != "" && err == nil {
		jobs = filterJobs(jobs, func(j record.JobRecord) bool {
			d, err := parseDate(j.Date)
			return err == nil && !d.After(to)
		})
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		jobs = filterJobs(jobs, func(j record.JobRecord) bool {
			return strings.Contains(strings.ToLower(j.Title), needle) ||
				strings.Contains(strings.ToLower(j.Description), needle) ||
				strings.Contains(strings.ToLower(j.Company), needle)
		})
	}

	if q.Type != "" && q.Type != "all" {
		jobs = filterJobs(jobs, func(j record.JobRecord) bool {
			return j.Type == q.Type
		})
	}

	return jobs
}

func filterJobs(jobs []record.JobRecord, keep func(record.JobRecord) bool) []record.JobRecord {
	out := []record.JobRecord{}
	for _, j := range jobs {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out
}

// Stats are the aggregate counts served by /api/stats.
type Stats struct {
	Total      int            `json:"total"`
	Today      int            `json:"today"`
	ThisWeek   int            `json:"thisWeek"`
	WithImages int            `json:"withImages"`
	ByType     map[string]int `json:"byType"`
}

// Stats computes the aggregates. Records with malformed dates are skipped in
// the date-based counts but still counted in the rest.
func (s *JobStore) Stats() Stats {
	jobs := s.All()

	stats := Stats{
		Total:  len(jobs),
		ByType: map[string]int{},
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	weekAgo := now.AddDate(0, 0, -7)

	for _, j := range jobs {
		if d, err := parseDate(j.Date); err == nil {
			if d.Format("2006-01-02") == today {
				stats.Today++
			}
			if !d.Before(weekAgo) {
				stats.ThisWeek++
			}
		}

		if j.HasImage {
			stats.WithImages++
		}

		jobType := j.Type
		if jobType == "" {
			jobType = "unknown"
		}
		stats.ByType[jobType]++
	}

	return stats
}

// date layouts accepted, most specific first
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
