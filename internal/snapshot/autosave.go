package snapshot

import (
	"context"
	"log"
	"sync"
	"time"
)

const DefaultInterval = 30 * time.Second

// Autosaver saves source() on a fixed interval from a single goroutine, so
// saves never overlap and the latest one wins.
type Autosaver struct {
	store    *FileStore
	source   func() Snapshot
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewAutosaver(store *FileStore, interval time.Duration, source func() Snapshot) *Autosaver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autosaver{store: store, source: source, interval: interval, done: make(chan struct{})}
}

// Start runs the save loop until ctx is done or Stop is called.
func (a *Autosaver) Start(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)
	go a.loop(ctx)
}

func (a *Autosaver) loop(ctx context.Context) {
	defer close(a.done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if res := a.store.Save(a.source()); !res.Success {
				log.Printf("⚠️ autosave to %s failed: %s", a.store.Path(), res.Error)
			}
		}
	}
}

// Stop ends the loop and writes a final snapshot. It is safe to call more
// than once.
func (a *Autosaver) Stop() Result {
	a.once.Do(func() {
		if a.cancel != nil {
			a.cancel()
			<-a.done
		}
	})
	res := a.store.Save(a.source())
	if res.Success {
		log.Printf("💾 Saved snapshot to %s", a.store.Path())
	}
	return res
}
