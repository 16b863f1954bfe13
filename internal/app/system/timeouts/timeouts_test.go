package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/givingback/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Read: 3 * time.Second})

	got := timeouts.Current()
	if got.Read != 3*time.Second {
		t.Errorf("Read: got %v, want 3s", got.Read)
	}
	if got.Ping != timeouts.DefaultPing || got.Write != timeouts.DefaultWrite {
		t.Errorf("zero values should keep defaults, got %+v", got)
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	timeouts.Configure(timeouts.Config{Ping: time.Minute, Read: time.Minute, Write: time.Minute})
	timeouts.Reset()

	want := timeouts.Config{Ping: timeouts.DefaultPing, Read: timeouts.DefaultRead, Write: timeouts.DefaultWrite}
	if got := timeouts.Current(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), 10*time.Millisecond, zap.NewNop(), "test")
	defer cancel()

	select {
	case <-ctx.Done():
		if ctx.Err() != context.DeadlineExceeded {
			t.Errorf("expected deadline exceeded, got %v", ctx.Err())
		}
	case <-time.After(time.Second):
		t.Fatal("context did not expire")
	}
}
