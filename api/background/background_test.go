package background

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestShutdownWaitsForTasks(t *testing.T) {
	bg := New(quietLogger())

	var done int32
	for i := 0; i < 5; i++ {
		err := bg.Go("count", func() {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&done, 1)
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	if err := bg.Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&done); got != 5 {
		t.Fatalf("expected 5 finished tasks, got %d", got)
	}

	if err := bg.Go("late", func() {}); !errors.Is(err, ErrShuttingDown) {
		t.Fatalf("expected ErrShuttingDown, got %v", err)
	}
}

func TestShutdownTimeout(t *testing.T) {
	bg := New(quietLogger())

	release := make(chan struct{})
	defer close(release)

	if err := bg.Go("stuck", func() { <-release }); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := bg.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	bg := New(quietLogger())

	if err := bg.Go("boom", func() { panic("boom") }); err != nil {
		t.Fatal(err)
	}
	if err := bg.Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
}
