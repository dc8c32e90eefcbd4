package registry

import "testing"

func TestAPIAddFirst(t *testing.T) {
	a := New()
	p1 := new(int)
	p2 := new(int)
	a.Add("PL_API_UI", p1)
	a.Add("PL_API_UI", p2)

	if got := a.First("PL_API_UI"); got != any(p1) {
		t.Fatalf("First = %v, want %v", got, p1)
	}
	if got := a.First("PL_API_MISSING"); got != nil {
		t.Fatalf("First of unregistered name = %v, want nil", got)
	}
}

func TestAPIReplace(t *testing.T) {
	a := New()
	p1 := new(int)
	p2 := new(int)
	a.Add("PL_API_UI", p1)

	if !a.Replace(p1, p2) {
		t.Fatal("Replace(p1, p2) = false, want true")
	}
	if got := a.First("PL_API_UI"); got != any(p2) {
		t.Fatalf("First after replace = %v, want %v", got, p2)
	}
	if a.Replace(p1, p2) {
		t.Fatal("Replace(p1, p2) after p1 already replaced = true, want false")
	}
}

func TestAPIRemove(t *testing.T) {
	a := New()
	p1 := new(int)
	a.Add("PL_API_UI", p1)

	if !a.Remove(p1) {
		t.Fatal("Remove(p1) = false, want true")
	}
	if got := a.First("PL_API_UI"); got != nil {
		t.Fatalf("First after remove = %v, want nil", got)
	}
	if a.Remove(p1) {
		t.Fatal("Remove(p1) twice = true, want false")
	}
}
