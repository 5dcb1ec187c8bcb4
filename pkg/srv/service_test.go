package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingService struct {
	name  string
	run   func(ctx context.Context) error
	mu    *sync.Mutex
	order *[]string
}

func (s *recordingService) Start(ctx context.Context) error {
	return s.run(ctx)
}

func (s *recordingService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.order = append(*s.order, s.name)
	return nil
}

func TestServices_ForegroundReturnStopsAll(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var mu sync.Mutex
	var order []string
	released := false

	services := []Service{
		NewCleanup(func() error {
			mu.Lock()
			defer mu.Unlock()
			released = true
			order = append(order, "cleanup")
			return nil
		}),
		&recordingService{name: "chat", mu: &mu, order: &order, run: func(ctx context.Context) error {
			time.Sleep(10 * time.Millisecond)
			return errors.New("user quit")
		}},
	}

	StartServices(ctx, stop, services)

	done := make(chan struct{})
	go func() {
		ShutdownServices(ctx, services)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("services did not shut down after the foreground service returned")
	}

	mu.Lock()
	defer mu.Unlock()
	if !released {
		t.Error("cleanup func was not called")
	}
	if len(order) != 2 || order[0] != "chat" || order[1] != "cleanup" {
		t.Errorf("shutdown order = %v, want [chat cleanup]", order)
	}
}
