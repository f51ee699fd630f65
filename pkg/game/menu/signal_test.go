package menu

import (
	"testing"
)

func TestSignalDeliversInOrder(t *testing.T) {
	var s Signal[int]
	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })
	s.Subscribe(func(v int) { got = append(got, v*10) })

	s.Emit(1)
	s.Emit(2)

	want := []int{1, 10, 2, 20}
	if len(got) != len(want) {
		t.Fatalf("deliveries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("deliveries = %v, want %v", got, want)
		}
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	var s Signal[string]
	calls := 0
	unsubscribe := s.Subscribe(func(string) { calls++ })

	s.Emit("a")
	unsubscribe()
	s.Emit("b")

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	// A second unsubscribe is harmless.
	unsubscribe()
	s.Emit("c")
	if calls != 1 {
		t.Errorf("handler called %d times after double unsubscribe, want 1", calls)
	}
}

func TestSignalUnsubscribeDuringEmit(t *testing.T) {
	var s Signal[int]
	first := 0
	second := 0

	var unsubscribeSecond func()
	s.Subscribe(func(int) {
		first++
		unsubscribeSecond()
	})
	unsubscribeSecond = s.Subscribe(func(int) { second++ })

	// The in-flight emit still delivers to the snapshot taken at its start.
	s.Emit(0)
	if first != 1 || second != 1 {
		t.Errorf("first=%d second=%d after first emit, want 1/1", first, second)
	}

	s.Emit(0)
	if second != 1 {
		t.Errorf("unsubscribed handler called again, second=%d", second)
	}
}
