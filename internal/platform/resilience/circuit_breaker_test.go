package resilience

import (
	"testing"
	"time"
)

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("allow before threshold: %v", err)
		}
		b.RecordFailure()
	}
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("state after 2 failures = %s, want closed", got)
	}

	b.RecordFailure()
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("state after threshold = %s, want open", got)
	}
	if err := b.Allow(); err != ErrCircuitOpen {
		t.Fatalf("allow while open = %v, want ErrCircuitOpen", err)
	}
}

func TestCircuitBreakerSuccessResetsFailureCount(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("state = %s, want closed", got)
	}
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	b := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 1,
		OpenTimeout:      10 * time.Second,
		HalfOpenMaxReq:   2,
	})
	b.now = func() time.Time { return current }

	b.RecordFailure()
	if err := b.Allow(); err != ErrCircuitOpen {
		t.Fatalf("allow while open = %v, want ErrCircuitOpen", err)
	}

	current = current.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("first probe after open timeout: %v", err)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("second probe after open timeout: %v", err)
	}
	if err := b.Allow(); err != ErrCircuitOpen {
		t.Fatalf("probe beyond half-open budget = %v, want ErrCircuitOpen", err)
	}

	b.RecordSuccess()
	b.RecordSuccess()
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("state after probe successes = %s, want closed", got)
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	b := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 1,
		OpenTimeout:      10 * time.Second,
		HalfOpenMaxReq:   1,
	})
	b.now = func() time.Time { return current }

	b.RecordFailure()
	current = current.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe after open timeout: %v", err)
	}

	b.RecordFailure()
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("state after failed probe = %s, want open", got)
	}
	if err := b.Allow(); err != ErrCircuitOpen {
		t.Fatalf("allow after failed probe = %v, want ErrCircuitOpen", err)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{})
	want := DefaultCircuitBreakerConfig()
	want.Enabled = false

	if got != want {
		t.Fatalf("normalized config = %+v, want %+v", got, want)
	}
}
