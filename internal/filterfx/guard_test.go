package filterfx

import (
	"sync"
	"testing"
	"time"
)

type countingFilter struct {
	closed   chan struct{}
	applied  *int
	mu       *sync.Mutex
	blockDur time.Duration
}

func (c *countingFilter) Apply(buf []int16) {
	if c.blockDur > 0 {
		time.Sleep(c.blockDur)
	}
	c.mu.Lock()
	*c.applied++
	c.mu.Unlock()
}
func (c *countingFilter) Close()       { close(c.closed) }
func (c *countingFilter) Stereo() bool { return true }
func (c *countingFilter) Freq() int    { return 44100 }

func TestSlotAttachDetachClosesExactlyOnce(t *testing.T) {
	var slot Slot
	f := &countingFilter{closed: make(chan struct{}), applied: new(int), mu: new(sync.Mutex)}

	slot.Attach(f)
	if !slot.Active() {
		t.Fatal("slot should be active after Attach")
	}

	slot.Detach()
	select {
	case <-f.closed:
	default:
		t.Fatal("Detach should have closed the previous filter")
	}
	if slot.Active() {
		t.Fatal("slot should be inactive after Detach")
	}
}

func TestSlotRunAppliesAttachedFilter(t *testing.T) {
	var slot Slot
	applied := 0
	mu := new(sync.Mutex)
	f := &countingFilter{closed: make(chan struct{}), applied: &applied, mu: mu}
	slot.Attach(f)

	buf := make([]int16, 4)
	slot.Run(buf)

	mu.Lock()
	defer mu.Unlock()
	if applied != 1 {
		t.Fatalf("applied = %d, want 1", applied)
	}
}

func TestSlotRunWithNoFilterIsNoop(t *testing.T) {
	var slot Slot
	buf := []int16{1, 2, 3, 4}
	slot.Run(buf)
	want := []int16{1, 2, 3, 4}
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestGuardMutualExclusion(t *testing.T) {
	var g Guard
	var shared int
	done := make(chan struct{})

	go func() {
		for i := 0; i < 1000; i++ {
			g.LockDecode()
			shared++
			g.UnlockDecode()
		}
		close(done)
	}()

	for i := 0; i < 1000; i++ {
		g.LockMain()
		shared++
		g.UnlockMain()
	}
	<-done

	if shared != 2000 {
		t.Fatalf("shared = %d, want 2000 (lost update under guard)", shared)
	}
}
