package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStorePutGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	if _, ok := s.Get(ctx, "league:1:2025"); ok {
		t.Fatal("unexpected hit on empty store")
	}

	s.Put(ctx, "league:1:2025", "snapshot")
	v, ok := s.Get(ctx, "league:1:2025")
	if !ok {
		t.Fatal("expected hit after put")
	}
	if v != "snapshot" {
		t.Fatalf("value = %v, want snapshot", v)
	}
}

func TestStoreIgnoresEmptyKey(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Put(ctx, "", "value")
	if _, ok := s.Get(ctx, ""); ok {
		t.Fatal("empty key must never hit")
	}
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore(10 * time.Millisecond)

	s.Put(ctx, "key", "value")
	if _, ok := s.Get(ctx, "key"); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get(ctx, "key"); ok {
		t.Fatal("expected miss after expiry")
	}
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	s := NewStore(0)

	s.Put(ctx, "key", "value")
	time.Sleep(5 * time.Millisecond)
	if _, ok := s.Get(ctx, "key"); !ok {
		t.Fatal("zero ttl entries must not expire")
	}
}

func TestStoreDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)

	s.Put(ctx, "a", 1)
	s.Put(ctx, "b", 2)

	s.Delete(ctx, "a")
	if _, ok := s.Get(ctx, "a"); ok {
		t.Fatal("expected miss after delete")
	}
	if _, ok := s.Get(ctx, "b"); !ok {
		t.Fatal("delete must not touch other keys")
	}

	s.Clear(ctx)
	if _, ok := s.Get(ctx, "b"); ok {
		t.Fatal("expected miss after clear")
	}
}

func TestStoreGetOrLoad(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)
	loads := 0

	loader := func(context.Context) (any, error) {
		loads++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		v, err := s.GetOrLoad(ctx, "key", loader)
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if v != "loaded" {
			t.Fatalf("call %d value = %v, want loaded", i, v)
		}
	}
	if loads != 1 {
		t.Fatalf("loader invoked %d times, want 1", loads)
	}
}

func TestStoreGetOrLoadErrorNotCached(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)
	wantErr := errors.New("upstream down")
	loads := 0

	_, err := s.GetOrLoad(ctx, "key", func(context.Context) (any, error) {
		loads++
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	v, err := s.GetOrLoad(ctx, "key", func(context.Context) (any, error) {
		loads++
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("recovery load: %v", err)
	}
	if v != "recovered" {
		t.Fatalf("value = %v, want recovered", v)
	}
	if loads != 2 {
		t.Fatalf("loader invoked %d times, want 2", loads)
	}
}

func TestStoreGetOrLoadEmptyKeyBypassesCache(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Minute)
	loads := 0

	for i := 0; i < 2; i++ {
		if _, err := s.GetOrLoad(ctx, "", func(context.Context) (any, error) {
			loads++
			return "value", nil
		}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if loads != 2 {
		t.Fatalf("loader invoked %d times, want 2", loads)
	}
}
