package maze

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestEventLog_FilterAndRecent(t *testing.T) {
	el := NewEventLog(nil)
	el.Add(1, EventMove, "player", "right (2,1)")
	el.Add(2, EventSolver, "reset", "(2,1)")
	el.Add(3, EventMove, "player", "left (1,1)")
	el.Add(4, EventResult, "win", "player reached goal")

	if n := el.Count(EventMove, ""); n != 2 {
		t.Fatalf("expected 2 move events, got %d", n)
	}
	if n := el.Count("", "win"); n != 1 {
		t.Fatalf("expected 1 win event, got %d", n)
	}
	recent := el.Recent(2)
	if len(recent) != 2 || recent[0].Tick != 3 || recent[1].Tick != 4 {
		t.Fatalf("unexpected recent events: %v", recent)
	}
	if len(el.Recent(10)) != 4 {
		t.Fatal("Recent larger than the log should return everything")
	}
}

func TestEventLog_MirrorsToLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.InfoLevel)

	el := NewEventLog(l)
	el.Add(1, EventMove, "player", "quiet at info")
	el.Add(2, EventResult, "gave_up", "no solution reachable")

	out := buf.String()
	if strings.Contains(out, "quiet at info") {
		t.Fatalf("move events should log at debug only: %s", out)
	}
	if !strings.Contains(out, "no solution reachable") || !strings.Contains(out, "category=result") {
		t.Fatalf("result event missing from log output: %s", out)
	}
}

func TestEvent_String(t *testing.T) {
	e := Event{Tick: 42, Category: EventResult, Key: "win", Value: "(17,3)"}
	if got := e.String(); !strings.HasPrefix(got, "[T=0042] result") || !strings.HasSuffix(got, "(17,3)") {
		t.Fatalf("unexpected format: %q", got)
	}
}
