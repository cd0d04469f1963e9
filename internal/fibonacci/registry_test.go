package fibonacci

import (
	"context"
	"reflect"
	"sync"
	"testing"
)

func TestDefaultFactory_List(t *testing.T) {
	t.Parallel()
	got := NewDefaultFactory().List()
	want := []string{AlgoIterative, AlgoMemo, AlgoNaive}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestDefaultFactory_Get(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()

	t.Run("Known key", func(t *testing.T) {
		t.Parallel()
		calc, err := f.Get(AlgoNaive)
		if err != nil {
			t.Fatalf("Get(%q) returned error: %v", AlgoNaive, err)
		}
		if calc.Name() == "" {
			t.Error("calculator name should not be empty")
		}
	})

	t.Run("Unknown key", func(t *testing.T) {
		t.Parallel()
		if _, err := f.Get("quantum"); err == nil {
			t.Error("Get with an unknown key should fail")
		}
	})

	t.Run("MustGet panics on unknown key", func(t *testing.T) {
		t.Parallel()
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustGet should panic for an unknown key")
			}
		}()
		f.MustGet("quantum")
	})
}

type constCalculator struct{ v int }

func (constCalculator) Name() string                                { return "Constant" }
func (c constCalculator) Calculate(context.Context, int) (int, error) { return c.v, nil }

func TestDefaultFactory_RegisterAndGetAll(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()
	f.Register("const", constCalculator{v: 7})

	all := f.GetAll()
	if len(all) != 4 {
		t.Fatalf("GetAll() has %d entries, want 4", len(all))
	}

	// GetAll returns a copy.
	delete(all, "const")
	if _, err := f.Get("const"); err != nil {
		t.Error("mutating GetAll's result must not affect the factory")
	}
}

func TestGlobalFactory_IsShared(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	factories := make([]*DefaultFactory, 8)
	for i := range factories {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			factories[i] = GlobalFactory()
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(factories); i++ {
		if factories[i] != factories[0] {
			t.Fatal("GlobalFactory should return the same instance")
		}
	}
}
