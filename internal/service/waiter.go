// FILE: internal/service/waiter.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	// WaitTimeout is the maximum time a client can wait for notifications
	WaitTimeout = 25 * time.Second
)

// WaitRegistry manages long-polling clients waiting for game state changes
type WaitRegistry struct {
	mu       sync.Mutex
	waiters  map[string][]*WaitRequest // gameID → waiting clients
	timeout  time.Duration
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

// WaitRequest represents a single client waiting for game updates
type WaitRequest struct {
	GameID    string
	MoveCount int           // Last known move count
	Notify    chan struct{} // Buffered, never closed
}

// NewWaitRegistry creates a new wait registry
func NewWaitRegistry(timeout time.Duration) *WaitRegistry {
	return &WaitRegistry{
		waiters:  make(map[string][]*WaitRequest),
		timeout:  timeout,
		shutdown: make(chan struct{}),
	}
}

// Register adds a waiter for gameID. The caller must follow with Await.
func (w *WaitRegistry) Register(gameID string, moveCount int) *WaitRequest {
	w.mu.Lock()
	defer w.mu.Unlock()

	req := &WaitRequest{
		GameID:    gameID,
		MoveCount: moveCount,
		Notify:    make(chan struct{}, 1),
	}
	w.waiters[gameID] = append(w.waiters[gameID], req)
	w.wg.Add(1)
	return req
}

// Await blocks until req is notified, times out, ctx ends or the registry
// shuts down, then unregisters it.
func (w *WaitRegistry) Await(ctx context.Context, req *WaitRequest) {
	defer w.wg.Done()
	defer w.removeWaiter(req)

	timer := time.NewTimer(w.timeout)
	defer timer.Stop()

	select {
	case <-req.Notify:
	case <-timer.C:
	case <-ctx.Done():
	case <-w.shutdown:
	}
}

// NotifyGame notifies all clients waiting on a game about state change
func (w *WaitRegistry) NotifyGame(gameID string, currentMoveCount int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, req := range w.waiters[gameID] {
		if req.MoveCount != currentMoveCount {
			signal(req)
		}
	}
}

// RemoveGame wakes every waiter on a game (called before game deletion)
func (w *WaitRegistry) RemoveGame(gameID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, req := range w.waiters[gameID] {
		signal(req)
	}
	delete(w.waiters, gameID)
}

// Waiting reports the number of registered waiters for a game
func (w *WaitRegistry) Waiting(gameID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.waiters[gameID])
}

// Shutdown releases all waiters and waits for them to return
func (w *WaitRegistry) Shutdown(timeout time.Duration) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("wait registry shutdown timed out")
	}
}

func (w *WaitRegistry) removeWaiter(req *WaitRequest) {
	w.mu.Lock()
	defer w.mu.Unlock()

	waitList := w.waiters[req.GameID]
	for i, waiter := range waitList {
		if waiter == req {
			w.waiters[req.GameID] = append(waitList[:i], waitList[i+1:]...)
			break
		}
	}

	if len(w.waiters[req.GameID]) == 0 {
		delete(w.waiters, req.GameID)
	}
}

// signal is non-blocking; a pending notification is enough.
func signal(req *WaitRequest) {
	select {
	case req.Notify <- struct{}{}:
	default:
	}
}
