package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/xraph/docuhook/ratelimit"
)

func TestAllowWithinBurst(t *testing.T) {
	l := ratelimit.New(5)

	for i := 0; i < 5; i++ {
		if !l.Allow("paperless:8000") {
			t.Fatalf("request %d should be allowed within burst", i)
		}
	}
	if l.Allow("paperless:8000") {
		t.Fatal("request over burst should be denied")
	}
}

func TestAllowUnlimited(t *testing.T) {
	l := ratelimit.New(0)

	for i := 0; i < 100; i++ {
		if !l.Allow("any") {
			t.Fatal("zero rate means unlimited")
		}
	}
}

func TestWithBurst(t *testing.T) {
	l := ratelimit.New(1, ratelimit.WithBurst(3))

	for i := 0; i < 3; i++ {
		if !l.Allow("host") {
			t.Fatalf("request %d should fit in the configured burst", i)
		}
	}
	if l.Allow("host") {
		t.Fatal("request over configured burst should be denied")
	}
}

func TestAllowPerKey(t *testing.T) {
	l := ratelimit.New(1)

	if !l.Allow("host-a") {
		t.Fatal("first request on host-a should pass")
	}
	if l.Allow("host-a") {
		t.Fatal("second request on host-a should be denied")
	}
	if !l.Allow("host-b") {
		t.Fatal("host-b has its own bucket")
	}
}

func TestReset(t *testing.T) {
	l := ratelimit.New(1)

	l.Allow("host")
	if l.Allow("host") {
		t.Fatal("bucket should be empty")
	}

	l.Reset("host")
	if !l.Allow("host") {
		t.Fatal("reset should refill the bucket")
	}
}

func TestWaitCancelled(t *testing.T) {
	l := ratelimit.New(1)
	l.Allow("host") // drain

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "host"); err == nil {
		t.Fatal("expected context error while waiting")
	}
}

func TestWaitRefill(t *testing.T) {
	l := ratelimit.New(50)
	l.Allow("host") // one token gone, plenty of refill rate

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := l.Wait(ctx, "host"); err != nil {
		t.Fatal("wait should succeed once the bucket refills:", err)
	}
}
