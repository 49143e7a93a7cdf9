package helper

import (
	"context"
	"errors"
	"testing"
	"time"
)

func withClock(t *testing.T, at time.Time) *time.Time {
	t.Helper()
	now := at
	prev := Now
	Now = func() time.Time { return now }
	t.Cleanup(func() { Now = prev })
	return &now
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	clock := withClock(t, time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC))
	store := NewMemorySessionStore(time.Hour)

	s := NewSession()
	c := testCatalog()
	_ = SelectDates(s, []string{"2025-08-02"}, openDates(c))
	mustSet(t, s, c, "2025-08-02", "a", 2)
	if err := store.Save(ctx, s); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Cart["2025-08-02"]["A"] = 9
	again, _ := store.Get(ctx, s.ID)
	if again.Cart["2025-08-02"]["A"] != 2 {
		t.Error("stored session shares the cart map with callers")
	}

	*clock = clock.Add(2 * time.Hour)
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expired session: err = %v", err)
	}
	if n := store.Sweep(); n != 1 {
		t.Errorf("swept %d, want 1", n)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestLocalBrokerUnsubscribe(t *testing.T) {
	b := NewLocalBroker()
	ch, cancel := b.Subscribe(context.Background())
	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Error("channel still open after cancel")
	}
}
