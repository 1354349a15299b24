// Package perf times the frames of an ecs.Proc and can capture CPU profiles
// of them.
package perf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/borkshop/spacetime/internal/ecs"
)

const numSamples = 64

// Perf wraps an ecs.Proc, keeping a ring of its recent run times. Profiling
// is requested with Toggle and takes effect at the start of the next round.
type Perf struct {
	ecs.Proc

	dir      string
	want     bool
	cpuProf  *os.File
	err      error
	round    int
	samples  [numSamples]time.Duration
	memStats runtime.MemStats
}

// Init wraps proc; profiles go under a directory named after name and the
// current time.
func (perf *Perf) Init(name string, proc ecs.Proc) {
	stamp := time.Now().Format("20060102T150405Z0700")
	perf.Proc = proc
	perf.dir = "prof-" + stamp
	if name != "" {
		perf.dir = name + "-" + perf.dir
	}
}

// Process runs one round of the wrapped proc.
func (perf *Perf) Process() {
	if err := perf.syncProfile(); err != nil {
		perf.err = err
		_ = perf.stopProfile()
	}
	var took time.Duration
	if perf.Proc != nil {
		start := time.Now()
		perf.Proc.Process()
		took = time.Since(start)
	}
	perf.samples[perf.round%numSamples] = took
	perf.round++
}

// Toggle flips whether a CPU profile is wanted.
func (perf *Perf) Toggle() { perf.want = !perf.want }

// Profiling returns true while a CPU profile is being written.
func (perf *Perf) Profiling() bool { return perf.cpuProf != nil }

// Close stops any profile in progress, returning the first error seen.
func (perf *Perf) Close() error {
	if err := perf.stopProfile(); perf.err == nil {
		perf.err = err
	}
	return perf.err
}

// Err returns the first profiling error; once set, profiling stays off.
func (perf *Perf) Err() error { return perf.err }

// Rounds returns how many rounds have been processed.
func (perf *Perf) Rounds() int { return perf.round }

// Last returns how long the most recent round took.
func (perf *Perf) Last() time.Duration {
	if perf.round == 0 {
		return 0
	}
	return perf.samples[(perf.round-1)%numSamples]
}

// Mean returns the average round time over the retained samples.
func (perf *Perf) Mean() time.Duration {
	n := perf.round
	if n > numSamples {
		n = numSamples
	}
	if n == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range perf.samples[:n] {
		total += d
	}
	return total / time.Duration(n)
}

func (perf *Perf) syncProfile() error {
	switch {
	case perf.err != nil:
		return perf.err
	case perf.want && perf.cpuProf == nil:
		return perf.startProfile()
	case !perf.want && perf.cpuProf != nil:
		return perf.stopProfile()
	}
	return nil
}

func (perf *Perf) startProfile() error {
	name := filepath.Join(perf.dir, fmt.Sprintf("cpu-t%d", perf.round))
	if err := os.MkdirAll(perf.dir, 0777); err != nil {
		return fmt.Errorf("failed to create profile dir: %v", err)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create cpu profile: %v", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	perf.cpuProf = f
	return nil
}

func (perf *Perf) stopProfile() error {
	perf.want = false
	f := perf.cpuProf
	if f == nil {
		return nil
	}
	perf.cpuProf = nil
	pprof.StopCPUProfile()
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close cpu profile: %v", err)
	}
	return nil
}
