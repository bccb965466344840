package scan

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cornelk/hashmap"
	"github.com/hedzr/go-ringbuf/v2/mpmc"
	"github.com/sirupsen/logrus"
)

// DefaultEventBufferSize is the number of pending events kept before the
// oldest are overwritten.
const DefaultEventBufferSize = 256

// ProgressCallback is called when the scan phase changes
type ProgressCallback func(phase string)

// EventType marks if the peripheral was newly discovered or updated
type EventType int

const (
	EventNew EventType = iota
	EventUpdated
)

func (t EventType) String() string {
	if t == EventNew {
		return "new"
	}
	return "updated"
}

type Event struct {
	Type       EventType
	Peripheral Peripheral
}

// Scanner runs filtered, optionally deduplicated discovery over a Source.
type Scanner struct {
	source      Source
	logger      *logrus.Logger
	peripherals *hashmap.Map[string, Peripheral]
	events      mpmc.RichOverlappedRingBuffer[Event]
	progress    ProgressCallback

	malformed   atomic.Uint64
	overwritten atomic.Uint64
}

// NewScanner creates a scanner reading from src. A nil logger falls back to a new logrus logger.
func NewScanner(src Source, logger *logrus.Logger) *Scanner {
	return NewScannerWithBuffer(src, logger, DefaultEventBufferSize)
}

// NewScannerWithBuffer is NewScanner with an explicit event ring capacity.
func NewScannerWithBuffer(src Source, logger *logrus.Logger, bufferSize uint32) *Scanner {
	if logger == nil {
		logger = logrus.New()
	}
	if bufferSize == 0 {
		bufferSize = DefaultEventBufferSize
	}

	return &Scanner{
		source:      src,
		logger:      logger,
		peripherals: hashmap.New[string, Peripheral](),
		events:      mpmc.NewOverlappedRingBuffer[Event](bufferSize),
		progress:    func(string) {},
	}
}

// OnProgress registers a callback for scan phase changes.
func (s *Scanner) OnProgress(cb ProgressCallback) {
	if cb == nil {
		cb = func(string) {}
	}
	s.progress = cb
}

// Scan discovers peripherals until ctx ends or settings.Duration elapses.
//
// observer, when non-nil, is called for every accepted report; it may be
// called concurrently. Context cancellation and deadline end the scan without
// error. The result maps DeviceID strings to the latest peripheral state.
//
// Each call starts with an empty device table and event ring; events left
// undrained by a previous scan are discarded.
func (s *Scanner) Scan(ctx context.Context, settings Settings, observer func(Peripheral)) (map[string]Peripheral, error) {
	if s.source == nil {
		return nil, errors.New("scanner has no source")
	}
	s.peripherals = hashmap.New[string, Peripheral]()
	s.malformed.Store(0)
	s.DrainEvents()
	s.overwritten.Store(0)

	if settings.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Duration)
		defer cancel()
	}

	s.logger.WithFields(logrus.Fields{
		"duration": settings.Duration,
		"mode":     settings.Mode,
		"filter":   settings.Filter,
		"unique":   settings.ignoreRepeats(),
	}).Info("Starting BLE scan...")

	s.progress("Scanning")

	handler := func(r Report) {
		s.handleReport(r, settings, observer)
	}

	err := s.source.Scan(ctx, !settings.ignoreRepeats(), handler)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"device_count": s.peripherals.Len(),
		"malformed":    s.malformed.Load(),
	}).Info("BLE scan completed")

	s.progress("Processing results")

	return s.Peripherals(), nil
}

// Peripherals returns a snapshot of the peripherals seen by the latest scan.
func (s *Scanner) Peripherals() map[string]Peripheral {
	out := make(map[string]Peripheral, s.peripherals.Len())
	s.peripherals.Range(func(key string, value Peripheral) bool {
		out[key] = value
		return true
	})
	return out
}

// DrainEvents removes and returns all pending events, oldest first.
func (s *Scanner) DrainEvents() []Event {
	var out []Event
	for !s.events.IsEmpty() {
		ev, err := s.events.Dequeue()
		if err != nil {
			break
		}
		out = append(out, ev)
	}
	return out
}

// MalformedReports is the number of reports discarded by the latest scan
// because their payload did not decode.
func (s *Scanner) MalformedReports() uint64 {
	return s.malformed.Load()
}

// OverwrittenEvents is the number of events the latest scan lost to ring overflow.
func (s *Scanner) OverwrittenEvents() uint64 {
	return s.overwritten.Load()
}

func (s *Scanner) handleReport(r Report, settings Settings, observer func(Peripheral)) {
	adv, err := r.Decode()
	if err != nil {
		s.malformed.Add(1)
		s.logger.WithFields(logrus.Fields{
			"address": r.AddressText(),
			"error":   err,
		}).Warn("Discarding malformed advertisement")
		return
	}

	if !settings.Filter.Passes(adv) {
		return
	}

	seen := r.Timestamp
	if seen.IsZero() {
		seen = time.Now()
	}

	p := Peripheral{
		DeviceID:        DeviceID(r.Address, r.AddressString),
		Address:         r.AddressText(),
		AddressIsRandom: r.AddressIsRandom,
		RSSI:            r.RSSI,
		Connectable:     r.Connectable,
		Advertisement:   adv,
		LastSeen:        seen,
	}
	key := p.DeviceID.String()

	event := Event{Peripheral: p}
	if _, existing := s.peripherals.GetOrInsert(key, p); existing {
		if settings.ignoreRepeats() {
			return
		}
		s.peripherals.Set(key, p)
		event.Type = EventUpdated
	} else {
		s.logger.WithFields(logrus.Fields{
			"device":  p.Name(),
			"address": p.Address,
			"rssi":    p.RSSI,
		}).Info("Discovered new device")
		event.Type = EventNew
	}

	if overwrites, err := s.events.EnqueueM(event); err != nil {
		s.logger.WithError(err).Warn("Failed to queue scan event")
	} else {
		s.overwritten.Add(uint64(overwrites))
	}

	if observer != nil {
		observer(p)
	}
}
