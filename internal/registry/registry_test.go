package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
)

func TestNewReturnsDefaults(t *testing.T) {
	t.Parallel()

	r := New()

	if got := r.Apps(); !slices.Equal(got, DefaultApps()) {
		t.Fatalf("expected default apps, got %v", got)
	}
	if got := r.Middleware(); !slices.Equal(got, DefaultMiddleware()) {
		t.Fatalf("expected default middleware, got %v", got)
	}

	// defaults must keep cors ahead of common
	chain := r.Middleware()
	if slices.Index(chain, "cors") > slices.Index(chain, "common") {
		t.Fatalf("default middleware orders cors after common: %v", chain)
	}
}

func TestAppsReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()

	r := New()

	got := r.Apps()
	got[0] = "mutated"
	if again := r.Apps(); slices.Equal(again, got) {
		t.Fatalf("expected defensive copy, got %v", again)
	}
}

func TestHasApp(t *testing.T) {
	t.Parallel()

	r := New()
	if !r.HasApp("user") {
		t.Fatalf("expected user app to be installed")
	}
	if r.HasApp("billing") {
		t.Fatalf("did not expect billing app")
	}
}

func TestSetAppsPreservesOrder(t *testing.T) {
	t.Parallel()

	r := New()
	want := []string{"auth", "core", "user"}
	if err := r.SetApps(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Apps(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSetAppsRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := [][]string{
		nil,
		{},
		{"auth", ""},
		{"auth", "auth"},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			r := New()
			if err := r.SetApps(tc); !errors.Is(err, ErrInvalidApps) {
				t.Fatalf("expected ErrInvalidApps for %v, got %v", tc, err)
			}
		})
	}
}

func TestSetMiddlewareOrdering(t *testing.T) {
	t.Parallel()

	r := New()

	if err := r.SetMiddleware([]string{"security", "cors", "common"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.SetMiddleware([]string{"common", "cors"}); !errors.Is(err, ErrInvalidMiddleware) {
		t.Fatalf("expected ErrInvalidMiddleware for cors after common, got %v", err)
	}
	if err := r.SetMiddleware(nil); !errors.Is(err, ErrInvalidMiddleware) {
		t.Fatalf("expected ErrInvalidMiddleware for empty chain, got %v", err)
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := New()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			apps := []string{"core", fmt.Sprintf("app%d", offset)}
			if err := r.SetApps(apps); err != nil {
				t.Errorf("SetApps failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			_ = r.Apps()
			_ = r.HasApp("core")
		}()
	}

	wg.Wait()

	if got := r.Apps(); len(got) != 2 {
		t.Fatalf("expected two apps after concurrent updates, got %v", got)
	}
}
