package server

import (
	"runtime"
	"time"
)

var start = time.Now()

const mb = 1 << 20

// HealthStats process health statistics
type HealthStats struct {
	Uptime          int64   `json:"uptime"`
	Goroutines      int     `json:"goroutines"`
	AllocatedMemory float64 `json:"allocated_memory"`
	HeapAllocated   float64 `json:"heap_allocated"`
	GCCycles        uint32  `json:"gc_cycles"`
	NumberOfCPUs    int     `json:"number_of_cpus"`
}

// GetHealthStats current health statistics, memory in megabytes
func GetHealthStats() *HealthStats {
	mem := &runtime.MemStats{}
	runtime.ReadMemStats(mem)
	return &HealthStats{
		Uptime:          int64(time.Since(start).Seconds()),
		Goroutines:      runtime.NumGoroutine(),
		AllocatedMemory: toMegaBytes(mem.Alloc),
		HeapAllocated:   toMegaBytes(mem.HeapAlloc),
		GCCycles:        mem.NumGC,
		NumberOfCPUs:    runtime.NumCPU(),
	}
}

func toMegaBytes(bytes uint64) float64 {
	return float64(bytes*100/mb) / 100
}
