package syncs

import "testing"

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)
	for range 2 {
		if !sem.TryAcquire() {
			t.Fatal()
		}
	}
	if sem.TryAcquire() {
		t.Fatal("should be full")
	}
	if sem.InUse() != 2 {
		t.Fatal()
	}

	sem.Release()
	if sem.InUse() != 1 {
		t.Fatal()
	}
	if !sem.TryAcquire() {
		t.Fatal()
	}
}
