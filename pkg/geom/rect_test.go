package geom

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 100, H: 100}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"inside", Rect{X: 120, Y: 120, W: 10, H: 10}, true},
		{"partial", Rect{X: 150, Y: 150, W: 100, H: 100}, true},
		{"touching right edge", Rect{X: 200, Y: 100, W: 100, H: 100}, true},
		{"touching bottom edge", Rect{X: 100, Y: 200, W: 100, H: 100}, true},
		{"touching corner", Rect{X: 200, Y: 200, W: 10, H: 10}, true},
		{"left of", Rect{X: 0, Y: 100, W: 99.9, H: 100}, false},
		{"right of", Rect{X: 200.1, Y: 100, W: 100, H: 100}, false},
		{"above", Rect{X: 100, Y: 0, W: 100, H: 99}, false},
		{"below", Rect{X: 100, Y: 201, W: 100, H: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.other); got != tt.want {
				t.Errorf("Overlaps(base, %+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestCollisionSymmetric(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 100, Y: 0, W: 100, H: 100},
		{X: 50, Y: 50, W: 10, H: 10},
		{X: 870, Y: 170, W: 10, H: 10},
		{X: 899.5, Y: 100, W: 100, H: 100},
		{X: -3, Y: 500, W: 100, H: 100},
		{X: 300, Y: 300, W: 0.1, H: 0.1},
	}
	for _, a := range rects {
		for _, b := range rects {
			if Collision(a, b) != Collision(b, a) {
				t.Errorf("Collision not symmetric for %+v and %+v", a, b)
			}
		}
	}
}

func TestCollisionAbsent(t *testing.T) {
	cell := Rect{X: 100, Y: 100, W: 100, H: 100}

	if Collision(nil, cell) || Collision(cell, nil) {
		t.Error("nil argument should never collide")
	}

	inactive := Pointer{X: 150, Y: 150}
	if Collision(inactive, cell) || Collision(cell, inactive) {
		t.Error("inactive pointer should never collide")
	}

	active := NewPointer(150, 150)
	if !Collision(active, cell) {
		t.Error("active pointer inside cell should collide")
	}
}

func TestNewPointerNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := NewPointer(v, 10)
		if !p.Absent() {
			t.Errorf("NewPointer(%v, 10) should be absent", v)
		}
		p = NewPointer(10, v)
		if !p.Absent() {
			t.Errorf("NewPointer(10, %v) should be absent", v)
		}
	}
	if NewPointer(0, 0).Absent() {
		t.Error("pointer at the origin is a valid position")
	}
}
