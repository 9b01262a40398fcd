package report

import (
	"fmt"
	"sync"
)

// Channel forwards progress as ProgressUpdate deltas on a buffered
// channel for a rendering loop to consume. Stop closes the channel,
// which the consumer treats as end-of-run.
type Channel struct {
	mu      sync.Mutex
	updates chan ProgressUpdate
	tasks   map[TaskID]int
	nextID  TaskID
	stopped bool
}

func NewChannel(buffer int) *Channel {
	return &Channel{
		updates: make(chan ProgressUpdate, buffer),
		tasks:   make(map[TaskID]int),
	}
}

// Updates exposes the consumer side of the channel.
func (c *Channel) Updates() <-chan ProgressUpdate {
	return c.updates
}

func (c *Channel) send(u ProgressUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.updates <- u
}

func (c *Channel) Log(level Level, format string, args ...any) {
	u := ProgressUpdate{Level: level, Message: fmt.Sprintf(format, args...)}
	if level == LevelError {
		u.ErrorDelta = 1
	}
	c.send(u)
}

func (c *Channel) AddTask(desc string, total int) TaskID {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.tasks[id] = 0
	c.mu.Unlock()

	c.send(ProgressUpdate{TotalDelta: total})
	return id
}

func (c *Channel) Advance(id TaskID, n int) {
	c.mu.Lock()
	if _, ok := c.tasks[id]; ok {
		c.tasks[id] += n
	}
	c.mu.Unlock()

	c.send(ProgressUpdate{ProcessedDelta: n})
}

func (c *Channel) SetCompleted(id TaskID, n int) {
	c.mu.Lock()
	prev, ok := c.tasks[id]
	if ok {
		c.tasks[id] = n
	}
	c.mu.Unlock()

	if ok {
		c.send(ProgressUpdate{ProcessedDelta: n - prev})
	}
}

func (c *Channel) RemoveTask(id TaskID) {
	c.mu.Lock()
	delete(c.tasks, id)
	c.mu.Unlock()
}

func (c *Channel) Start() {}

func (c *Channel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.stopped {
		c.stopped = true
		close(c.updates)
	}
}

// CountSpread and CountBundle bump the run counters the progress view
// shows alongside file totals.
func (c *Channel) CountSpread() { c.send(ProgressUpdate{SpreadsDelta: 1}) }
func (c *Channel) CountBundle() { c.send(ProgressUpdate{BundlesDelta: 1}) }
