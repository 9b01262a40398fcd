package report

import (
	"fmt"
	"io"
	"sync"
)

// Console is a line-oriented Reporter for non-interactive runs and
// --debug mode. Log lines go straight to the writer; task progress is
// only printed at task boundaries to keep output pipeable.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	debug bool

	nextID TaskID
	tasks  map[TaskID]*consoleTask
}

type consoleTask struct {
	desc      string
	total     int
	completed int
}

func NewConsole(w io.Writer, debug bool) *Console {
	return &Console{w: w, debug: debug, tasks: make(map[TaskID]*consoleTask)}
}

func (c *Console) Log(level Level, format string, args ...any) {
	if level == LevelDebug && !c.debug {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

func (c *Console) AddTask(desc string, total int) TaskID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.tasks[c.nextID] = &consoleTask{desc: desc, total: total}
	fmt.Fprintf(c.w, "%s (%d items)\n", desc, total)
	return c.nextID
}

func (c *Console) Advance(id TaskID, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tasks[id]; ok {
		t.completed += n
	}
}

func (c *Console) SetCompleted(id TaskID, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tasks[id]; ok {
		t.completed = n
	}
}

func (c *Console) RemoveTask(id TaskID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tasks[id]; ok {
		fmt.Fprintf(c.w, "%s: %d/%d done\n", t.desc, t.completed, t.total)
		delete(c.tasks, id)
	}
}

func (c *Console) Start() {}
func (c *Console) Stop()  {}
