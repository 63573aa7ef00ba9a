package source

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreakerOpensAndRecovers(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          10 * time.Millisecond,
	})

	fail := func() error { return errors.New("down") }
	ok := func() error { return nil }

	if err := cb.Execute("src", fail); err == nil {
		t.Fatalf("expected failure to propagate")
	}
	if cb.State() != StateClosed {
		t.Fatalf("one failure must not open the breaker")
	}

	_ = cb.Execute("src", fail)
	if cb.State() != StateOpen {
		t.Fatalf("expected breaker to open after threshold, state=%s", cb.State())
	}

	// open breaker short-circuits
	called := false
	err := cb.Execute("src", func() error { called = true; return nil })
	if err == nil || called {
		t.Fatalf("open breaker must fail fast without calling through")
	}

	// after the timeout a probe is allowed and success closes it
	time.Sleep(15 * time.Millisecond)
	if err := cb.Execute("src", ok); err != nil {
		t.Fatalf("half-open probe failed: %v", err)
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected breaker closed after successful probe, state=%s", cb.State())
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          5 * time.Millisecond,
	})

	_ = cb.Execute("src", func() error { return errors.New("down") })
	if cb.State() != StateOpen {
		t.Fatalf("expected open breaker")
	}

	time.Sleep(10 * time.Millisecond)
	_ = cb.Execute("src", func() error { return errors.New("still down") })
	if cb.State() != StateOpen {
		t.Fatalf("failed half-open probe must reopen the breaker")
	}
}
