package crypto

import (
	"errors"
	"sync"
	"testing"
)

func TestNewEmailIndex_EmptyKey(t *testing.T) {
	if _, err := NewEmailIndex(""); !errors.Is(err, ErrEmptyIndexKey) {
		t.Fatalf("expected ErrEmptyIndexKey, got %v", err)
	}
}

func TestEmailIndex_Normalisation(t *testing.T) {
	idx, err := NewEmailIndex("k")
	if err != nil {
		t.Fatal(err)
	}

	base := idx.Compute("user@example.com")
	for _, v := range []string{"USER@example.com", "  user@Example.COM\t", "user@example.com"} {
		if got := idx.Compute(v); got != base {
			t.Fatalf("Compute(%q) = %s, want %s", v, got, base)
		}
	}

	if idx.Compute("other@example.com") == base {
		t.Fatal("different emails must produce different indexes")
	}
	if len(base) != 64 {
		t.Fatalf("index length = %d, want 64 hex chars", len(base))
	}
}

func TestEmailIndex_KeySensitivity(t *testing.T) {
	a, _ := NewEmailIndex("key-a")
	b, _ := NewEmailIndex("key-b")

	if a.Compute("x@y.z") == b.Compute("x@y.z") {
		t.Fatal("indexes under different keys must differ")
	}
}

func TestEmailIndex_Concurrent(t *testing.T) {
	idx, _ := NewEmailIndex("k")
	want := idx.Compute("x@y.z")

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := idx.Compute("x@y.z"); got != want {
				t.Errorf("concurrent Compute = %s, want %s", got, want)
			}
		}()
	}
	wg.Wait()
}
