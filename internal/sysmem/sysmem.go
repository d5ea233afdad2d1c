// Package sysmem reports host memory pressure so the executor can decline
// to fork when the machine is already starved.
package sysmem

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/teachshell/xvsh/internal/ui"
)

const (
	// WarnThresholdPercent is the RAM-used percentage above which launching
	// a new pipeline gets a warning printed but is allowed to proceed.
	WarnThresholdPercent = 75
	// AbortThresholdPercent is the RAM-used percentage above which the
	// executor refuses to launch a new foreground pipeline.
	AbortThresholdPercent = 95
)

// Info describes current host memory usage.
type Info struct {
	TotalBytes     uint64
	AvailableBytes uint64
	UsedPercent    float64
}

// Read returns current host memory usage.
func Read() (*Info, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("sysmem: %w", err)
	}
	return &Info{
		TotalBytes:     v.Total,
		AvailableBytes: v.Available,
		UsedPercent:    v.UsedPercent,
	}, nil
}

// Guard is the result of checking whether a new pipeline may launch.
type Guard struct {
	// OK is false when the pipeline must not be started.
	OK bool
	// Warning is set (with OK still true) when the pipeline may proceed
	// but memory is already tight.
	Warning string
	// AbortReason is set when OK is false.
	AbortReason string
}

// CheckBeforeFork inspects current memory pressure and reports whether a
// new foreground pipeline should be allowed to launch. minAvailableMB is
// the operator-configured floor (config.Config.MaxMemoryBufferMB) below
// which a fork is refused regardless of the percentage thresholds — a
// fixed machine may have enough headroom percentage-wise while still
// lacking the working set a foreground pipeline needs. If memory info is
// unavailable, it fails open with a warning rather than blocking the shell.
func CheckBeforeFork(minAvailableMB int) *Guard {
	info, err := Read()
	if err != nil {
		return &Guard{OK: true, Warning: "could not read system memory; proceeding anyway"}
	}

	availableMB := int64(info.AvailableBytes / (1 << 20))

	switch {
	case info.UsedPercent >= AbortThresholdPercent || availableMB < int64(minAvailableMB):
		return &Guard{
			OK: false,
			AbortReason: fmt.Sprintf(
				"refusing to fork: %.0f%% of memory in use, only %s available (abort threshold %.0f%%, minimum %dMB)",
				info.UsedPercent, ui.FormatSize(int64(info.AvailableBytes)), float64(AbortThresholdPercent), minAvailableMB),
		}
	case info.UsedPercent >= WarnThresholdPercent:
		return &Guard{
			OK: true,
			Warning: fmt.Sprintf(
				"warning: %.0f%% of memory in use, %s available",
				info.UsedPercent, ui.FormatSize(int64(info.AvailableBytes))),
		}
	default:
		return &Guard{OK: true}
	}
}
