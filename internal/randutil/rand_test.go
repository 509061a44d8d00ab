package randutil

import "testing"

func TestNewReproducible(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if got, want := a.Int63(), b.Int63(); got != want {
			t.Fatalf("draw %d: %d != %d", i, got, want)
		}
	}
}

func TestNewDistinctSeeds(t *testing.T) {
	t.Parallel()

	if New(1).Int63() == New(2).Int63() {
		t.Error("different seeds produced the same first draw")
	}
}

func TestDeriveStreamsAreIndependent(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]bool)
	for n := 0; n < 64; n++ {
		s := Derive(7, n)
		if seen[s] {
			t.Fatalf("stream %d collided with an earlier seed", n)
		}
		seen[s] = true
	}

	if Derive(7, 0) != Derive(7, 0) {
		t.Error("derivation is not deterministic")
	}
	if Derive(7, 0) == Derive(8, 0) {
		t.Error("different base seeds produced the same stream seed")
	}
}
