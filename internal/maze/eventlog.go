package maze

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Event categories recorded by a Session.
const (
	EventMove   = "move"
	EventSolver = "solver"
	EventToggle = "toggle"
	EventResult = "result"
)

// Event is one recorded session occurrence.
type Event struct {
	Tick     int
	Category string // move, solver, toggle, result
	Key      string // specific event name within the category
	Value    string // human-readable detail
}

// String formats the event as a fixed-width log line.
//
//	[T=0042] result   win              (17,3)
func (e Event) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog collects session events in order. When a logger is attached,
// every event is mirrored to it at debug level, and result events at info.
type EventLog struct {
	entries []Event
	log     logrus.FieldLogger
}

// NewEventLog creates an empty log. log may be nil.
func NewEventLog(log logrus.FieldLogger) *EventLog {
	return &EventLog{log: log}
}

// Add records a new event.
func (el *EventLog) Add(tick int, category, key, value string) {
	e := Event{Tick: tick, Category: category, Key: key, Value: value}
	el.entries = append(el.entries, e)
	if el.log == nil {
		return
	}
	entry := el.log.WithFields(logrus.Fields{
		"tick":     tick,
		"category": category,
		"key":      key,
	})
	if category == EventResult {
		entry.Info(value)
	} else {
		entry.Debug(value)
	}
}

// Entries returns all recorded events.
func (el *EventLog) Entries() []Event {
	return el.entries
}

// Filter returns events matching category and/or key. Empty matches anything.
func (el *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many events match category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// Recent returns up to n of the newest events, oldest first.
func (el *EventLog) Recent(n int) []Event {
	if n >= len(el.entries) {
		return el.entries
	}
	return el.entries[len(el.entries)-n:]
}
