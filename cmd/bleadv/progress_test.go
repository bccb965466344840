package main

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards a bytes.Buffer shared with the printer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestProgressPrinter_Countdown(t *testing.T) {
	// GOAL: Verify the printer shows the phase with remaining seconds and clears the line on stop
	//
	// TEST SCENARIO: Start a 5s countdown → wait for a tick → stop → output has countdown and clear sequence

	out := &syncBuffer{}
	p := NewProgressPrinter(out, "Scanning for BLE devices", "Scanning", 5*time.Second, "Processing results")
	p.Start()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "(Scanning ")
	}, time.Second, 10*time.Millisecond, "countdown MUST be printed")

	p.Stop()
	p.Stop() // idempotent

	s := out.String()
	assert.Contains(t, s, "Scanning for BLE devices (Scanning...)", "initial line MUST be printed")
	assert.Contains(t, s, "s)")
	assert.True(t, strings.HasSuffix(s, clearLineSequence), "line MUST be cleared on stop")
}

func TestProgressPrinter_StopPhase(t *testing.T) {
	// GOAL: Verify a stop phase delivered through the callback stops the printer
	//
	// TEST SCENARIO: Callback("Processing results") → printer stops → no output follows the clear sequence

	out := &syncBuffer{}
	p := NewProgressPrinter(out, "Scanning", "Scanning", 0, "Processing results")
	p.Start()

	cb := p.Callback()
	cb("Processing results")

	s := out.String()
	assert.True(t, strings.HasSuffix(s, clearLineSequence))

	time.Sleep(2 * progressUpdateInterval)
	assert.Equal(t, s, out.String(), "nothing MUST be printed after stop")
}

func TestProgressPrinter_StopWithoutStart(t *testing.T) {
	out := &syncBuffer{}
	p := NewProgressPrinter(out, "Scanning", "Scanning", time.Second)
	p.Stop()
	assert.Empty(t, out.String())
}

func TestProgressPrinter_DoubleStartPanics(t *testing.T) {
	p := NewProgressPrinter(&syncBuffer{}, "Scanning", "Scanning", time.Second)
	p.Start()
	defer p.Stop()
	assert.Panics(t, p.Start)
}
