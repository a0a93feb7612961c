package resilience

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlightSharesInFlightResult(t *testing.T) {
	t.Parallel()

	var group SingleFlight
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	type outcome struct {
		val    any
		shared bool
	}
	leader := make(chan outcome, 1)
	follower := make(chan outcome, 1)

	go func() {
		val, _, shared := group.Do("/game", func() (any, error) {
			calls.Add(1)
			close(started)
			<-release
			return "payload", nil
		})
		leader <- outcome{val: val, shared: shared}
	}()

	<-started
	go func() {
		val, _, shared := group.Do("/game", func() (any, error) {
			calls.Add(1)
			return "follower payload", nil
		})
		follower <- outcome{val: val, shared: shared}
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	lead := <-leader
	foll := <-follower

	if calls.Load() != 1 {
		t.Fatalf("fn ran %d times, want 1", calls.Load())
	}
	if lead.shared {
		t.Fatal("leader result reported as shared")
	}
	if !foll.shared {
		t.Fatal("follower result not reported as shared")
	}
	if foll.val != "payload" {
		t.Fatalf("follower got %v, want leader payload", foll.val)
	}
}

func TestSingleFlightDistinctKeysRunSeparately(t *testing.T) {
	t.Parallel()

	var group SingleFlight

	val, err, shared := group.Do("/game", func() (any, error) { return 1, nil })
	if err != nil || shared || val != 1 {
		t.Fatalf("Do(/game) = (%v, %v, %v)", val, err, shared)
	}

	val, err, shared = group.Do("/bootstrap-static", func() (any, error) { return 2, nil })
	if err != nil || shared || val != 2 {
		t.Fatalf("Do(/bootstrap-static) = (%v, %v, %v)", val, err, shared)
	}
}

func TestSingleFlightPropagatesError(t *testing.T) {
	t.Parallel()

	var group SingleFlight
	wantErr := errors.New("upstream unavailable")

	val, err, shared := group.Do("/event/3/live", func() (any, error) { return nil, wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("Do() error = %v, want %v", err, wantErr)
	}
	if val != nil || shared {
		t.Fatalf("Do() = (%v, _, %v), want nil value and unshared", val, shared)
	}
}

func TestSingleFlightKeyReusableAfterCompletion(t *testing.T) {
	t.Parallel()

	var group SingleFlight
	var calls atomic.Int32

	for i := 0; i < 2; i++ {
		if _, _, shared := group.Do("/game", func() (any, error) {
			calls.Add(1)
			return nil, nil
		}); shared {
			t.Fatalf("sequential Do() %d reported shared", i)
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("fn ran %d times, want 2", calls.Load())
	}
}
