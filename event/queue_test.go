package event

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: TypeRelease})
	q.Push(Event{Type: TypeResetExpansion})
	q.Push(Event{Type: TypeHover, X: 3, Y: 7})

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("consumed %d events, want 3", len(got))
	}
	if got[0].Type != TypeRelease || got[1].Type != TypeResetExpansion {
		t.Errorf("order wrong: %v %v", got[0].Type, got[1].Type)
	}
	if got[2].X != 3 || got[2].Y != 7 {
		t.Errorf("hover payload lost: %+v", got[2])
	}

	if q.Consume() != nil {
		t.Error("queue not drained")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 8
	const perProducer = 20

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: TypeToggleAnimation})
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if batch == nil {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("consumed %d events, want %d", total, producers*perProducer)
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+50; i++ {
		q.Push(Event{Type: TypeHover, X: i})
	}
	got := q.Consume()
	if len(got) == 0 || len(got) > QueueSize {
		t.Fatalf("consumed %d events after overflow", len(got))
	}
	last := got[len(got)-1]
	if last.X != QueueSize+49 {
		t.Errorf("newest event lost, last X = %d", last.X)
	}
}
