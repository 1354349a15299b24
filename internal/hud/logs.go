// Package hud holds heads-up display state shared by front ends.
package hud

import (
	"bytes"
	"fmt"
	"strings"
)

// Logs is a bounded buffer of log messages; once full, each new message
// discards the oldest.
type Logs struct {
	Buffer []string
	part   bytes.Buffer
}

// Init initializes the log buffer, allocating the given capacity.
func (logs *Logs) Init(logCap int) {
	if logCap < 1 {
		logCap = 1
	}
	logs.Buffer = make([]string, 0, logCap)
	logs.part.Reset()
}

// Log formats and appends a log message to the buffer, discarding the oldest
// message if full.
func (logs *Logs) Log(mess string, args ...interface{}) {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	if len(logs.Buffer) < cap(logs.Buffer) {
		logs.Buffer = append(logs.Buffer, mess)
	} else {
		copy(logs.Buffer, logs.Buffer[1:])
		logs.Buffer[len(logs.Buffer)-1] = mess
	}
}

// Write appends each complete line in p as a message, so that Logs may back
// a log.Logger. Partial lines wait for their newline.
func (logs *Logs) Write(p []byte) (int, error) {
	logs.part.Write(p)
	for {
		b := logs.part.Bytes()
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			break
		}
		logs.Log(strings.TrimRight(string(b[:i]), "\r"))
		logs.part.Next(i + 1)
	}
	return len(p), nil
}

// Tail returns up to the last n messages, oldest first.
func (logs *Logs) Tail(n int) []string {
	if off := len(logs.Buffer) - n; off > 0 {
		return logs.Buffer[off:]
	}
	return logs.Buffer
}
