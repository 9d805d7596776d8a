package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/dotapt/pkg/errors"
)

type testItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[testItem]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}
	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("register valid item", func(t *testing.T) {
		if err := reg.Register("item1", testItem{ID: 1, Name: "test"}); err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	item := testItem{ID: 1, Name: "test"}
	_ = reg.Register("item1", item)

	got, err := reg.Get("item1")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if got != item {
		t.Errorf("Get() = %+v, want %+v", got, item)
	}

	if _, err := reg.Get("nonexistent"); !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Get() non-existing should return ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	reg := New[testItem]()
	for i, name := range []string{"a", "b", "c"} {
		_ = reg.Register(name, testItem{ID: i})
	}

	if err := reg.Remove("b"); err != nil {
		t.Fatalf("Remove() error = %v, want nil", err)
	}
	if reg.Has("b") {
		t.Error("Item should not exist after removal")
	}
	if got := reg.List(); fmt.Sprint(got) != "[a c]" {
		t.Errorf("List() after Remove() = %v, want [a c]", got)
	}
	if err := reg.Remove("nonexistent"); !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Remove() non-existing should return ErrNotFound, got %v", err)
	}
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	reg := New[testItem]()

	items := []string{"charlie", "alpha", "bravo"}
	for i, name := range items {
		_ = reg.Register(name, testItem{ID: i})
	}

	list := reg.List()
	if len(list) != len(items) {
		t.Fatalf("List() returned %d items, want %d", len(list), len(items))
	}
	for i, name := range list {
		if name != items[i] {
			t.Errorf("List()[%d] = %s, want %s", i, name, items[i])
		}
	}

	// the returned slice is a copy
	list[0] = "mutated"
	if reg.List()[0] != "charlie" {
		t.Error("List() should return a copy")
	}
}

func TestMustRegister(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "one", testItem{ID: 1})

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() duplicate should panic")
		}
	}()
	MustRegister(reg, "one", testItem{ID: 2})
}

func TestConcurrency(t *testing.T) {
	reg := New[testItem]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_item%d", goroutineID, i)
				if err := reg.Register(name, testItem{ID: goroutineID*1000 + i}); err != nil {
					t.Errorf("Concurrent Register() failed: %v", err)
				}
				_ = reg.Has(name)
				_ = reg.List()
			}
		}(g)
	}

	wg.Wait()

	if got, want := reg.Count(), goroutines*itemsPerGoroutine; got != want {
		t.Errorf("Count() after concurrent writes = %d, want %d", got, want)
	}
	if got := len(reg.List()); got != goroutines*itemsPerGoroutine {
		t.Errorf("len(List()) = %d", got)
	}
}
