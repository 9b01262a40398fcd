package batch

import (
	"sync"
	"time"
)

// Severity ranks a recorded failure. Critical entries change the run's
// result code; warnings and errors only show up in the summary.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Record is one failure entry. Append-only; records live for a single
// run and are read back for the end-of-run summary.
type Record struct {
	Path       string
	Err        error
	Severity   Severity
	Step       string
	RetryCount int
	Timestamp  time.Time
}

// ErrorTracker aggregates failures from concurrent workers.
type ErrorTracker struct {
	mu      sync.Mutex
	records []Record
}

func NewErrorTracker() *ErrorTracker {
	return &ErrorTracker{}
}

func (t *ErrorTracker) Add(rec Record) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	t.mu.Lock()
	t.records = append(t.records, rec)
	t.mu.Unlock()
}

func (t *ErrorTracker) HasErrors() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records) > 0
}

func (t *ErrorTracker) HasCriticalErrors() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range t.records {
		if r.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Records returns a copy of the recorded entries.
func (t *ErrorTracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Summary is the aggregate view rendered at the end of a run.
type Summary struct {
	Total      int
	BySeverity map[Severity]int
	ByStep     map[string]int

	// FilesWithErrors counts distinct paths with at least one record.
	FilesWithErrors int

	// WorstFile is the path with the most recorded failures.
	WorstFile      string
	WorstFileCount int
}

func (t *ErrorTracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{
		Total:      len(t.records),
		BySeverity: make(map[Severity]int),
		ByStep:     make(map[string]int),
	}
	byFile := make(map[string]int)
	for _, r := range t.records {
		s.BySeverity[r.Severity]++
		if r.Step != "" {
			s.ByStep[r.Step]++
		}
		if r.Path != "" {
			byFile[r.Path]++
			if byFile[r.Path] > s.WorstFileCount {
				s.WorstFile = r.Path
				s.WorstFileCount = byFile[r.Path]
			}
		}
	}
	s.FilesWithErrors = len(byFile)
	return s
}

// ResultCode maps the recorded severities onto the process exit code:
// 0 clean, 1 warnings or errors, 2 at least one critical failure.
func (t *ErrorTracker) ResultCode() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	code := 0
	for _, r := range t.records {
		if r.Severity == SeverityCritical {
			return 2
		}
		code = 1
	}
	return code
}
