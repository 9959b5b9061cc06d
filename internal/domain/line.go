// Package domain contains the task document model and the split algorithm.
package domain

import (
	"strings"
	"unicode"
)

// Task markers recognized at the start of a trimmed line.
const (
	CompletedMarker = "- [x]"
	PendingMarker   = "- [ ]"
)

// LineKind classifies a single document line.
type LineKind int

const (
	LineText          LineKind = iota // Header, free text, blank
	LinePendingTask                   // Starts with "- [ ]"
	LineCompletedTask                 // Starts with "- [x]"
)

// String returns a readable name for the kind.
func (k LineKind) String() string {
	switch k {
	case LinePendingTask:
		return "pending"
	case LineCompletedTask:
		return "completed"
	default:
		return "text"
	}
}

// ClassifyLine reports whether line is a task line and whether that task is completed.
// Non-task lines always yield (false, false).
func ClassifyLine(line string) (isTask, isCompleted bool) {
	stripped := strings.TrimSpace(line)
	if strings.HasPrefix(stripped, CompletedMarker) {
		return true, true
	}
	if strings.HasPrefix(stripped, PendingMarker) {
		return true, false
	}
	return false, false
}

// Kind returns the LineKind of line.
func Kind(line string) LineKind {
	isTask, isCompleted := ClassifyLine(line)
	switch {
	case isCompleted:
		return LineCompletedTask
	case isTask:
		return LinePendingTask
	default:
		return LineText
	}
}

// Indent returns the number of leading whitespace characters in line.
func Indent(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// IsBlank reports whether line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
