package types

import "sync"

// RunContext is the host state shared by every directive of one run
type RunContext struct {
	mu       sync.RWMutex
	defaults map[string]interface{}

	BaseDir string
	DryRun  bool
	Logger  Logger
	Runner  Runner

	// Reports receives one report per directive invocation, when set
	Reports ReportSink
}

// NewRunContext creates a run context with empty defaults
func NewRunContext(logger Logger, runner Runner) *RunContext {
	return &RunContext{
		defaults: make(map[string]interface{}),
		Logger:   logger,
		Runner:   runner,
	}
}

// Defaults returns a copy of the defaults mapping keyed by directive name
func (c *RunContext) Defaults() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]interface{}, len(c.defaults))
	for k, v := range c.defaults {
		out[k] = v
	}
	return out
}

// DefaultsFor returns the defaults registered for one directive namespace,
// or an empty mapping
func (c *RunContext) DefaultsFor(namespace string) map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if m, ok := c.defaults[namespace].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

// SetDefaults replaces the defaults of every namespace present in values
func (c *RunContext) SetDefaults(values map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, v := range values {
		c.defaults[k] = v
	}
}

// Report publishes a directive report to the sink, if any
func (c *RunContext) Report(r Report) {
	if c.Reports != nil {
		c.Reports(r)
	}
}
