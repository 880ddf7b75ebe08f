package services

import "sync"

// customerLocks serializes writes to one customer's record so order
// aggregates and profile edits never overwrite each other.
var customerLocks sync.Map

func lockCustomer(id string) func() {
	v, _ := customerLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
