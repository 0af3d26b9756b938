// internal/suite/rng_test.go
package suite

import "testing"

func TestRNG_StaysInRange(t *testing.T) {
	g := NewRNG(1, 10)
	for i := 0; i < 1000; i++ {
		v := g.Float32()
		if v < 1 || v >= 10 {
			t.Fatalf("sample %v out of [1, 10)", v)
		}
	}
}

func TestRandomFloats(t *testing.T) {
	vs := RandomFloats(0, 1, 256)
	if len(vs) != 256 {
		t.Fatalf("expected 256 samples, got %d", len(vs))
	}
	for _, v := range vs {
		if v < 0 || v >= 1 {
			t.Fatalf("sample %v out of [0, 1)", v)
		}
	}
	if len(RandomFloats(0, 1, 0)) != 0 {
		t.Error("count 0 must yield no samples")
	}
}
