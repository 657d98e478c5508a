package utils

import "testing"

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{0, 0, 0, 0},
		{99.9, 100, 0, 100},
		{150, 250, 100, 200},
		{899, 599, 800, 500},
	}
	for _, tt := range tests {
		gx, gy := SnapToGrid(tt.x, tt.y, 100)
		if gx != tt.wantX || gy != tt.wantY {
			t.Errorf("SnapToGrid(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
		}
	}
}

func TestCellIndex(t *testing.T) {
	col, row := CellIndex(250, 120, 100)
	if col != 2 || row != 1 {
		t.Errorf("CellIndex(250, 120) = (%d, %d), want (2, 1)", col, row)
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced different sequences")
		}
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("seed 0 should be replaced by a clock seed")
	}
}

func TestStepped(t *testing.T) {
	s := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.Stepped(40, 90, 10)
		if v < 40 || v > 90 || v%10 != 0 {
			t.Fatalf("Stepped returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Errorf("saw %d distinct values, want 6", len(seen))
	}
}

func TestFloatRange(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.FloatRange(0.4, 0.6)
		if v < 0.4 || v > 0.6 {
			t.Fatalf("FloatRange returned %v", v)
		}
	}
}
