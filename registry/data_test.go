package registry

import "testing"

func TestDataSetGet(t *testing.T) {
	d := NewData()
	d.Set("frame_count", 42)

	v, ok := d.Get("frame_count")
	if !ok || v != 42 {
		t.Fatalf("Get(frame_count) = %v, %v, want 42, true", v, ok)
	}
	if _, ok := d.Get("missing"); ok {
		t.Fatal("Get(missing) ok = true, want false")
	}
}

func TestDataOverflowsPastInlineCap(t *testing.T) {
	d := NewData()
	for i := 0; i < dataInlineCap+10; i++ {
		d.Set(keyFor(i), i)
	}
	if d.Len() != dataInlineCap+10 {
		t.Fatalf("Len() = %d, want %d", d.Len(), dataInlineCap+10)
	}
	for i := 0; i < dataInlineCap+10; i++ {
		v, ok := d.Get(keyFor(i))
		if !ok || v != i {
			t.Fatalf("Get(%s) = %v, %v, want %d, true", keyFor(i), v, ok, i)
		}
	}
}

func TestDataDelete(t *testing.T) {
	d := NewData()
	d.Set("a", 1)
	d.Set("b", 2)
	d.Delete("a")

	if _, ok := d.Get("a"); ok {
		t.Fatal("Get(a) after delete ok = true, want false")
	}
	if v, ok := d.Get("b"); !ok || v != 2 {
		t.Fatalf("Get(b) = %v, %v, want 2, true", v, ok)
	}
	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
}

func TestGetTyped(t *testing.T) {
	d := NewData()
	d.Set("scale", float32(1.5))

	if v, ok := GetTyped[float32](d, "scale"); !ok || v != 1.5 {
		t.Fatalf("GetTyped[float32] = %v, %v, want 1.5, true", v, ok)
	}
	if _, ok := GetTyped[int](d, "scale"); ok {
		t.Fatal("GetTyped[int] on a float32 value ok = true, want false")
	}
}

func keyFor(i int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 0, 8)
	if i == 0 {
		return "ka"
	}
	n := i
	for n > 0 {
		b = append([]byte{alphabet[n%len(alphabet)]}, b...)
		n /= len(alphabet)
	}
	return "k" + string(b)
}
