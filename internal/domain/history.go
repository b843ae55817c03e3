package domain

import (
	"fmt"
	"time"
)

// HistoryLimit caps the number of remembered spins.
const HistoryLimit = 10

// TimestampLayout is the display format of history timestamps.
const TimestampLayout = "3:04:05 PM"

// HistoryEntry is one remembered spin.
type HistoryEntry struct {
	Question  string `json:"question"`
	Result    string `json:"result"`
	Timestamp string `json:"timestamp"`
}

// NewHistoryEntry stamps an entry with the display-formatted local time of at.
func NewHistoryEntry(question, result string, at time.Time) HistoryEntry {
	return HistoryEntry{
		Question:  question,
		Result:    result,
		Timestamp: at.Format(TimestampLayout),
	}
}

// Line renders the entry the way the history list shows it.
func (e HistoryEntry) Line(emoji string) string {
	return fmt.Sprintf("%s %q → %s", emoji, e.Question, e.Result)
}

// History is ordered most-recent-first.
type History []HistoryEntry

// Push returns a new history with e in front, truncated to HistoryLimit.
func (h History) Push(e HistoryEntry) History {
	n := min(len(h)+1, HistoryLimit)
	out := make(History, 0, n)
	out = append(out, e)
	out = append(out, h[:n-1]...)
	return out
}

// Clone returns a copy safe to hand to callers.
func (h History) Clone() History {
	out := make(History, len(h))
	copy(out, h)
	return out
}
