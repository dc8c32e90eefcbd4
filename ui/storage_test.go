package ui

import "testing"

func TestStorageSetGet(t *testing.T) {
	s := NewStorage()
	s.SetInt(3, 42)
	s.SetFloat(1, 1.5)
	s.SetPtr(2, "hello")

	if s.Int(3) != 42 {
		t.Errorf("Int(3) = %d, want 42", s.Int(3))
	}
	if s.Float(1) != 1.5 {
		t.Errorf("Float(1) = %f, want 1.5", s.Float(1))
	}
	if s.Ptr(2) != "hello" {
		t.Errorf("Ptr(2) = %v, want hello", s.Ptr(2))
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestStorageOverwrite(t *testing.T) {
	s := NewStorage()
	s.SetInt(5, 1)
	s.SetInt(5, 2)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after overwrite", s.Len())
	}
	if s.Int(5) != 2 {
		t.Errorf("Int(5) = %d, want 2", s.Int(5))
	}
}

func TestStorageMissingKeyPanics(t *testing.T) {
	s := NewStorage()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading a missing key")
		}
	}()
	s.Int(99)
}

func TestStorageKindMismatchPanics(t *testing.T) {
	s := NewStorage()
	s.SetInt(1, 7)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading an int entry as a float")
		}
	}()
	s.Float(1)
}

func TestStorageIntOrInsertsDefault(t *testing.T) {
	s := NewStorage()
	if v := s.IntOr(1, 10); v != 10 {
		t.Fatalf("IntOr = %d, want 10", v)
	}
	if !s.Has(1) {
		t.Fatal("expected IntOr to insert the default")
	}
	if v := s.IntOr(1, 99); v != 10 {
		t.Fatalf("IntOr on existing key = %d, want 10 (unchanged)", v)
	}
}

func TestStorageClear(t *testing.T) {
	s := NewStorage()
	s.SetInt(1, 1)
	s.SetInt(2, 2)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", s.Len())
	}
}
