package perf

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// Dash summarizes a Perf as a single status line.
type Dash struct {
	*Perf
	notes map[string]string
}

// Note adds or updates an optional note in the dashboard.
func (da *Dash) Note(name, mess string, args ...interface{}) {
	if da.notes == nil {
		da.notes = make(map[string]string, 1)
	}
	da.notes[name] = fmt.Sprintf(mess, args...)
}

// Status renders the dashboard line, sampling heap stats as it goes.
func (da *Dash) Status() string {
	ms := &da.Perf.memStats
	runtime.ReadMemStats(ms)
	da.Note("heap", "%v/%v", humanize.IBytes(ms.HeapAlloc), humanize.Comma(int64(ms.HeapObjects)))

	parts := make([]string, 0, len(da.notes))
	for name, mess := range da.notes {
		parts = append(parts, fmt.Sprintf("%s=%s", name, mess))
	}
	sort.Strings(parts)

	return fmt.Sprintf("%c t=%d Δt=%v μ=%v %s",
		da.status(), da.Perf.round, da.Perf.Last(), da.Perf.Mean(),
		strings.Join(parts, " "))
}

func (da *Dash) status() rune {
	switch {
	case da.Perf.err != nil:
		return '■'
	case da.Perf.cpuProf != nil:
		return '◉'
	case da.Perf.want:
		return '◎'
	}
	return '○'
}
