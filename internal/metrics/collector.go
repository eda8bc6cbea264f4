package metrics

import (
	"time"

	"research-blender-api/internal/logging"
)

// Collector periodically refreshes gauges that are derived from process state.
type Collector struct {
	started  time.Time
	interval time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(started time.Time, interval time.Duration) *Collector {
	return &Collector{
		started:  started,
		interval: interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection and waits for the loop to exit.
func (c *Collector) Stop() {
	close(c.stopChan)
	<-c.doneChan
}

func (c *Collector) collectLoop() {
	defer close(c.doneChan)

	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			logging.Debug("metrics collector stopped")
			return
		}
	}
}

func (c *Collector) collect() {
	UptimeSeconds.Set(time.Since(c.started).Seconds())
}
