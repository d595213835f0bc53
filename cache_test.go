package pagesblog

import (
	"errors"
	"testing"
	"time"
)

func TestPageCacheBuildsOnce(t *testing.T) {
	c := NewPageCache(time.Minute)
	calls := 0
	build := func() ([]byte, error) {
		calls++
		return []byte("page"), nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.Get("a", build)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "page" {
			t.Errorf("Get = %q, want %q", got, "page")
		}
	}
	if calls != 1 {
		t.Errorf("build called %d times, want 1", calls)
	}
}

func TestPageCacheExpires(t *testing.T) {
	c := NewPageCache(time.Minute)
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	build := func() ([]byte, error) {
		calls++
		return []byte("page"), nil
	}
	c.Get("a", build)
	now = now.Add(30 * time.Second)
	c.Get("a", build)
	if calls != 1 {
		t.Fatalf("build called %d times before expiry, want 1", calls)
	}
	now = now.Add(31 * time.Second)
	c.Get("a", build)
	if calls != 2 {
		t.Errorf("build called %d times after expiry, want 2", calls)
	}
}

func TestPageCacheDoesNotStoreErrors(t *testing.T) {
	c := NewPageCache(time.Minute)
	boom := errors.New("boom")
	if _, err := c.Get("a", func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("Get error = %v, want %v", err, boom)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after failed build, want 0", c.Len())
	}
}
