package status

import (
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get(KeyGameCount)
	b := reg.Ints.Get(KeyGameCount)
	if a != b {
		t.Fatal("Expected same pointer for repeated Get")
	}
	a.Store(3)
	if got := b.Load(); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	for _, k := range []string{KeyDepletion, KeyCompletion, KeyDepletionRate, KeyCompletion} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(k string, _ *AtomicFloat) { keys = append(keys, k) })

	want := []string{KeyDepletionRate, KeyCompletion, KeyDepletion}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func TestCellZeroValues(t *testing.T) {
	var f AtomicFloat
	var s AtomicString
	if f.Get() != 0 || s.Load() != "" {
		t.Error("Expected zero cells to read 0 and empty")
	}
	f.Set(0.75)
	s.Store("running")
	if f.Get() != 0.75 || s.Load() != "running" {
		t.Errorf("Expected stored values, got %v %q", f.Get(), s.Load())
	}
}

func TestRegistryNumericOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Bools.Get(KeyPaused).Store(true)
	reg.Ints.Get(KeySuccessCount).Store(2)
	reg.Floats.Get(KeyCompletion).Set(0.25)
	reg.Strings.Get(KeyPhase).Store("running")

	got := map[string]float64{}
	var order []string
	reg.Numeric(func(k string, v float64) {
		got[k] = v
		order = append(order, k)
	})

	if len(got) != 3 {
		t.Fatalf("Expected 3 numeric cells, got %d", len(got))
	}
	if got[KeyPaused] != 1 || got[KeySuccessCount] != 2 || got[KeyCompletion] != 0.25 {
		t.Errorf("Unexpected values: %v", got)
	}
	if order[0] != KeyPaused {
		t.Errorf("Expected bools first, got %s", order[0])
	}
}
