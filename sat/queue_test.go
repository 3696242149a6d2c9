package sat

import "testing"

func TestLitQueueFIFOOrder(t *testing.T) {
	q := newLitQueue(2)

	want := []Lit{PosLit(1), NegLit(2), PosLit(3), NegLit(4), PosLit(5)}
	for _, l := range want {
		q.push(l)
	}

	for i, w := range want {
		if q.isEmpty() {
			t.Fatalf("queue emptied early at index %d", i)
		}
		if got := q.pop(); got != w {
			t.Errorf("pop() at index %d = %v, want %v", i, got, w)
		}
	}
	if !q.isEmpty() {
		t.Errorf("queue not empty after draining every pushed literal")
	}
}

func TestLitQueueGrowsAcrossWraparound(t *testing.T) {
	q := newLitQueue(2)

	// Push and pop enough times that start/end wrap around the ring
	// before the growth path is exercised, matching the corpus's own
	// ring-buffer queue test shape.
	q.push(PosLit(1))
	q.push(PosLit(2))
	q.pop()
	q.push(PosLit(3))
	q.push(PosLit(4)) // forces grow() with start != 0
	q.push(PosLit(5))

	want := []Lit{PosLit(2), PosLit(3), PosLit(4), PosLit(5)}
	for _, w := range want {
		if got := q.pop(); got != w {
			t.Errorf("pop() = %v, want %v", got, w)
		}
	}
}

func TestLitQueueClear(t *testing.T) {
	q := newLitQueue(4)
	q.push(PosLit(1))
	q.push(PosLit(2))

	q.clear()
	if !q.isEmpty() {
		t.Errorf("queue not empty after clear")
	}
}

func TestNextPow2(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{16, 16},
		{17, 32},
	}
	for _, c := range cases {
		if got := nextPow2(c.in); got != c.want {
			t.Errorf("nextPow2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
