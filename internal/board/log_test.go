package board

import (
	"sync"
	"testing"
)

func TestAppendAssignsSequence(t *testing.T) {
	l := NewLog(0)

	for i := 1; i <= 3; i++ {
		seq, err := l.Append(Event{Kind: PenMove, Author: "a"})
		if err != nil {
			t.Fatalf("Append[%d]: %v", i, err)
		}
		if seq != uint64(i) {
			t.Errorf("Append[%d] seq = %d, want %d", i, seq, i)
		}
	}

	events := l.Snapshot()
	if len(events) != 3 {
		t.Fatalf("Snapshot returned %d events, want 3", len(events))
	}
	for i, ev := range events {
		if ev.Seq != uint64(i+1) {
			t.Errorf("events[%d].Seq = %d, want %d", i, ev.Seq, i+1)
		}
	}
}

func TestSnapshotReturnsCopy(t *testing.T) {
	l := NewLog(0)
	l.Append(Event{Kind: PenDown, Author: "a", Color: "#F45B69"})

	snap := l.Snapshot()
	snap[0].Color = "mutated"

	if got := l.Snapshot()[0].Color; got != "#F45B69" {
		t.Errorf("mutation of snapshot leaked into log: color = %q", got)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	l := NewLog(0)
	if got := l.Snapshot(); len(got) != 0 {
		t.Errorf("empty log Snapshot returned %d events", len(got))
	}
	if got := l.Len(); got != 0 {
		t.Errorf("empty log Len = %d", got)
	}
}

func TestAppendLogFull(t *testing.T) {
	l := NewLog(2)

	if _, err := l.Append(Event{Kind: PenDown, Author: "a"}); err != nil {
		t.Fatalf("Append[1]: %v", err)
	}
	if _, err := l.Append(Event{Kind: PenUp, Author: "a"}); err != nil {
		t.Fatalf("Append[2]: %v", err)
	}

	_, err := l.Append(Event{Kind: PenDown, Author: "b"})
	if err != ErrLogFull {
		t.Fatalf("Append past limit: err = %v, want ErrLogFull", err)
	}

	// The rejected write must not change the log.
	if got := l.Len(); got != 2 {
		t.Errorf("Len after rejected write = %d, want 2", got)
	}
}

func TestConcurrentAppendsKeepTotalOrder(t *testing.T) {
	l := NewLog(0)
	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := l.Append(Event{Kind: PenMove, Author: "a"}); err != nil {
					t.Errorf("Append: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	events := l.Snapshot()
	if len(events) != writers*perWriter {
		t.Fatalf("got %d events, want %d", len(events), writers*perWriter)
	}
	for i, ev := range events {
		if ev.Seq != uint64(i+1) {
			t.Fatalf("events[%d].Seq = %d, want %d (sequence has gaps or duplicates)", i, ev.Seq, i+1)
		}
	}
}

func TestKindValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{PenDown, true},
		{PenMove, true},
		{PenLine, true},
		{PenUp, true},
		{Kind(""), false},
		{Kind("scribble"), false},
	}
	for _, tt := range tests {
		if got := tt.kind.Valid(); got != tt.want {
			t.Errorf("Kind(%q).Valid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
