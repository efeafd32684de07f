package scheduler

import (
	"context"
	"testing"
	"time"
)

type countingRefresher struct {
	calls chan struct{}
}

func (c *countingRefresher) Refresh(context.Context) error {
	select {
	case c.calls <- struct{}{}:
	default:
	}
	return nil
}

func TestStartRunsImmediately(t *testing.T) {
	r := &countingRefresher{calls: make(chan struct{}, 1)}
	s := New(r, time.Hour, time.Second)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	select {
	case <-r.calls:
	case <-time.After(3 * time.Second):
		t.Fatal("expected an immediate refresh")
	}
}

func TestStartWithoutTarget(t *testing.T) {
	s := New(nil, 0, 0)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}
