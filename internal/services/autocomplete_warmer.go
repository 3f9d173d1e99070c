package services

import (
	"context"
	"log"
	"sync"
	"time"
)

type refresher interface {
	Refresh(ctx context.Context) error
}

// AutocompleteWarmer periodically rebuilds the cached autocomplete lists so
// requests rarely pay for assembly.
type AutocompleteWarmer struct {
	svc      refresher
	interval time.Duration
	stop     chan struct{}
	wg       sync.WaitGroup
}

func NewAutocompleteWarmer(svc refresher, interval time.Duration) *AutocompleteWarmer {
	w := &AutocompleteWarmer{
		svc:      svc,
		interval: interval,
		stop:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w
}

func (w *AutocompleteWarmer) loop() {
	defer w.wg.Done()

	w.refreshOnce()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refreshOnce()
		case <-w.stop:
			return
		}
	}
}

func (w *AutocompleteWarmer) refreshOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	if err := w.svc.Refresh(ctx); err != nil {
		log.Printf("autocomplete warmer: refresh failed: %v", err)
	}
}

func (w *AutocompleteWarmer) Shutdown(ctx context.Context) {
	close(w.stop)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("autocomplete warmer shut down cleanly")
	case <-ctx.Done():
		log.Println("autocomplete warmer shutdown timed out")
	}
}
