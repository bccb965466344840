package scan

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects the radio duty cycle a backend should use.
type Mode int

const (
	ModeBalanced Mode = iota
	ModeHighPower
	ModeLowPower
)

const (
	DefaultScanTimeout = 10 * time.Second
	MaxScanDuration    = 30 * time.Second
)

var modeNames = map[Mode]string{
	ModeBalanced:  "balanced",
	ModeHighPower: "high-power",
	ModeLowPower:  "low-power",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the names printed by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return ModeBalanced, fmt.Errorf("unknown scan mode %q (expected balanced, high-power or low-power)", s)
}

// Settings configures a single Scanner.Scan run.
type Settings struct {
	Filter Filter
	// IgnoreRepeatBroadcasts reports each device once, in addition to the
	// filter's own flag.
	IgnoreRepeatBroadcasts bool
	Mode                   Mode
	// Duration bounds the scan; zero means until the context ends.
	Duration time.Duration
}

// DefaultSettings scans everything for DefaultScanTimeout.
func DefaultSettings() Settings {
	return Settings{Duration: DefaultScanTimeout}
}

func (s Settings) ignoreRepeats() bool {
	return s.IgnoreRepeatBroadcasts || s.Filter.IgnoreRepeatBroadcasts()
}

// ClampDuration limits d to the range [0, MaxScanDuration].
func ClampDuration(d time.Duration) time.Duration {
	switch {
	case d < 0:
		return 0
	case d > MaxScanDuration:
		return MaxScanDuration
	default:
		return d
	}
}
