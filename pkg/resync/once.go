package resync

import (
	"sync"
	"sync/atomic"
)

// Once is like sync.Once but can be reset.
// Useful for lazily-loaded singletons that tests need to reload.
type Once struct {
	done uint32
	m    sync.Mutex
}

// Do calls fn if and only if Do has not been called since the last Reset.
func (o *Once) Do(fn func()) {
	if atomic.LoadUint32(&o.done) == 1 {
		return
	}
	o.m.Lock()
	defer o.m.Unlock()
	if o.done == 0 {
		defer atomic.StoreUint32(&o.done, 1)
		fn()
	}
}

// Reset allows the next call to Do to run again.
func (o *Once) Reset() {
	o.m.Lock()
	defer o.m.Unlock()
	atomic.StoreUint32(&o.done, 0)
}
