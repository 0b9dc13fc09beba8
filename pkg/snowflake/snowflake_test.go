package snowflake

import (
	"strconv"
	"sync"
	"testing"
)

func parse(t *testing.T, s string) int64 {
	t.Helper()
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t.Fatalf("request id %q is not decimal: %v", s, err)
	}
	return id
}

func TestGenRequestID(t *testing.T) {
	id := parse(t, GenRequestID())
	if id <= 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}

	t.Logf("generated request id: %d", id)
}

func TestGenRequestID_Unique(t *testing.T) {
	const n = 10000
	ids := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		id := GenRequestID()
		if _, exists := ids[id]; exists {
			t.Fatalf("duplicate id found: %s", id)
		}
		ids[id] = struct{}{}
	}
}

func TestGenRequestID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 5000
		total      = goroutines * perRoutine
	)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ids  = make(map[string]struct{}, total)
		dups []string
	)

	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenRequestID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					dups = append(dups, id)
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	if len(dups) > 0 {
		t.Fatalf("duplicate ids found in concurrent test: %v", dups)
	}
}

func TestGenRequestID_Order(t *testing.T) {
	prev := parse(t, GenRequestID())

	for i := 0; i < 1000; i++ {
		curr := parse(t, GenRequestID())
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}
