package booking

import "sync"

// barberLocks serializes check-and-insert booking sections per
// barber. Availability reads stay lock-free and advisory; only the
// authoritative booking path takes the lock.
type barberLocks struct {
	mu sync.Mutex
	m  map[uint]*sync.Mutex
}

func newBarberLocks() *barberLocks {
	return &barberLocks{m: make(map[uint]*sync.Mutex)}
}

// acquire locks the barber's mutex and returns the unlock func.
func (l *barberLocks) acquire(barberID uint) func() {
	l.mu.Lock()
	bl, ok := l.m[barberID]
	if !ok {
		bl = &sync.Mutex{}
		l.m[barberID] = bl
	}
	l.mu.Unlock()

	bl.Lock()
	return bl.Unlock
}
