// Package testutils provides helpers shared by the tests of the cssdecl packages.
package testutils

import (
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
)

// CapturedLogs stores the messages traced at info level (or above),
// while it is installed as the global trace selector.
type CapturedLogs struct {
	mu   sync.Mutex
	logs []string
}

// CaptureLogs redirects every trace to the returned value,
// until [CapturedLogs.Logs] or [CapturedLogs.AssertNoLogs] is called.
func CaptureLogs() *CapturedLogs {
	out := &CapturedLogs{}
	tracing.SetTraceSelector(selector(func(string) tracing.Trace { return captureTrace{out} }))
	return out
}

func (c *CapturedLogs) append(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = append(c.logs, s)
}

// Logs restores a silent tracing and returns the captured messages.
func (c *CapturedLogs) Logs() []string {
	tracing.SetTraceSelector(selector(func(string) tracing.Trace { return captureTrace{} }))
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.logs...)
}

// AssertNoLogs restores a silent tracing and fails if a message was captured.
func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	logs := c.Logs()
	if len(logs) != 0 {
		t.Fatalf("unexpected logs:\n%v", logs)
	}
}

type selector func(key string) tracing.Trace

func (s selector) Select(key string) tracing.Trace { return s(key) }

// captureTrace with a nil output is silent
type captureTrace struct {
	out *CapturedLogs
}

func (ct captureTrace) Errorf(s string, args ...interface{}) { ct.log(s, args) }
func (ct captureTrace) Infof(s string, args ...interface{})  { ct.log(s, args) }

func (ct captureTrace) log(s string, args []interface{}) {
	if ct.out != nil {
		ct.out.append(fmt.Sprintf(s, args...))
	}
}

func (ct captureTrace) Debugf(string, ...interface{})       {}
func (ct captureTrace) P(string, interface{}) tracing.Trace { return ct }
func (ct captureTrace) SetTraceLevel(tracing.TraceLevel)    {}
func (ct captureTrace) GetTraceLevel() tracing.TraceLevel   { return tracing.LevelInfo }
func (ct captureTrace) SetOutput(io.Writer)                 {}
