// Package sysmon samples host CPU and memory load for the execution banner.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot holds a single reading of system-wide resource usage. Fields are
// zero when the platform does not report them.
type Snapshot struct {
	CPUPercent float64 // 0.0 .. 100.0, delta since the previous call
	MemPercent float64 // 0.0 .. 100.0
	MemTotal   uint64  // bytes
}

// Sample collects a CPU and memory snapshot. Errors from the underlying
// probes leave the corresponding fields at zero.
func Sample() Snapshot {
	var s Snapshot
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
	}
	return s
}

// Available reports whether any probe returned data.
func (s Snapshot) Available() bool {
	return s.MemTotal > 0
}

// String renders the snapshot as "CPU 12.5%, memory 40.0%".
func (s Snapshot) String() string {
	return fmt.Sprintf("CPU %.1f%%, memory %.1f%%", s.CPUPercent, s.MemPercent)
}
