package daemon

import (
	"math"
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		Items:          8,
		FreeMoney:      1500,
		TotalToSave:    900,
		CommonBalance:  -100,
		YearEndSavings: 4200,
	}
	curr := Snapshot{
		Items:          9,
		FreeMoney:      1450,
		TotalToSave:    950,
		CommonBalance:  -100,
		YearEndSavings: 4300,
	}

	delta := diffSnapshots(prev, curr)
	if delta.Items != 1 {
		t.Fatalf("Items delta = %d, want 1", delta.Items)
	}
	if math.Abs(delta.FreeMoney+50) > 1e-9 {
		t.Fatalf("FreeMoney delta = %.2f, want -50", delta.FreeMoney)
	}
	if math.Abs(delta.TotalToSave-50) > 1e-9 {
		t.Fatalf("TotalToSave delta = %.2f, want 50", delta.TotalToSave)
	}
	if delta.CommonBalance != 0 {
		t.Fatalf("CommonBalance delta = %.2f, want 0", delta.CommonBalance)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}

	if !diffSnapshots(curr, curr).isZero() {
		t.Fatal("identical snapshots should produce a zero delta")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		DBPath:       "budget.db",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{Time: time.Now()})
	s.publishEvent(Event{Time: time.Now()})
	s.publishEvent(Event{Time: time.Now()})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s := New(Config{DBPath: "budget.db"})

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	s.publishEvent(Event{Snapshot: Snapshot{FreeMoney: 1200}})

	select {
	case e := <-ch:
		if e.Snapshot.FreeMoney != 1200 {
			t.Fatalf("event snapshot = %+v", e.Snapshot)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered to subscriber")
	}
}
