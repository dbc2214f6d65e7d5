package pipeline

import (
	"sync"

	"repopack/pipeline/models"
)

// Collector accumulates processed files from concurrent workers. It owns
// its lock; workers call Append and never see the mutex.
type Collector struct {
	mutex sync.Mutex
	files []models.ProcessedFile
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Append adds one processed file. Safe for concurrent use.
func (c *Collector) Append(file models.ProcessedFile) {
	c.mutex.Lock()
	c.files = append(c.files, file)
	c.mutex.Unlock()
}

// Drain returns the collected files. Call only after every worker has
// finished; the collector must not be reused afterwards.
func (c *Collector) Drain() []models.ProcessedFile {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	files := c.files
	c.files = nil
	return files
}
