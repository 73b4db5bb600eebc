package syncs

type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, n)
}

// TryAcquire takes a slot without blocking and reports whether it got one.
func (s Semaphore) TryAcquire() bool {
	select {
	case s <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s Semaphore) Release() {
	<-s
}

// InUse reports the number of slots taken.
func (s Semaphore) InUse() int {
	return len(s)
}
