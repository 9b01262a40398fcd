// Package report decouples the conversion core from rendering. Workers
// talk to a Reporter; whether that feeds a terminal UI, plain stderr, or
// nothing at all is the caller's choice.
package report

// Level classifies log lines.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// TaskID identifies a tracked unit of work within one Reporter.
type TaskID int

// Reporter is the progress capability handed to the conversion core.
// Implementations must be safe for concurrent use: workers log and
// advance tasks in parallel.
type Reporter interface {
	Log(level Level, format string, args ...any)
	AddTask(desc string, total int) TaskID
	Advance(id TaskID, n int)
	SetCompleted(id TaskID, n int)
	RemoveTask(id TaskID)

	// Start begins rendering; Stop flushes and tears it down. Both are
	// idempotent.
	Start()
	Stop()
}

// ProgressUpdate is one delta event on the rendering channel. Fields are
// deltas so updates from concurrent workers fold together regardless of
// arrival order.
type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	ErrorDelta     int
	SpreadsDelta   int
	BundlesDelta   int

	// Message carries a log line; empty for pure counter updates.
	Message string
	Level   Level
}

// Discard ignores everything. Used in tests and dry runs.
type Discard struct{}

func (Discard) Log(Level, string, ...any)    {}
func (Discard) AddTask(string, int) TaskID   { return 0 }
func (Discard) Advance(TaskID, int)          {}
func (Discard) SetCompleted(TaskID, int)     {}
func (Discard) RemoveTask(TaskID)            {}
func (Discard) Start()                       {}
func (Discard) Stop()                        {}
