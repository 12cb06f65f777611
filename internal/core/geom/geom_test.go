package geom

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	a := BoxFromCenter(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	tests := []struct {
		name   string
		center Vec3
		want   bool
	}{
		{"same place", NewVec3(0, 0, 0), true},
		{"partial overlap", NewVec3(0.5, 0, 0.5), true},
		{"touching faces", NewVec3(1, 0, 0), true},
		{"apart on x", NewVec3(1.01, 0, 0), false},
		{"apart on y", NewVec3(0, 1.5, 0), false},
		{"apart on z", NewVec3(0, 0, -2), false},
	}

	for _, tt := range tests {
		b := BoxFromCenter(tt.center, NewVec3(1, 1, 1))
		if got := a.Intersects(b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := b.Intersects(a); got != tt.want {
			t.Errorf("%s: Intersects is not symmetric", tt.name)
		}
	}
}

func TestBoxCenterSizeExpand(t *testing.T) {
	b := BoxFromCenter(NewVec3(2, 1, -3), NewVec3(4, 2, 6))

	if c := b.Center(); c != NewVec3(2, 1, -3) {
		t.Errorf("Expected center (2, 1, -3), got %v", c)
	}
	if s := b.Size(); s != NewVec3(4, 2, 6) {
		t.Errorf("Expected size (4, 2, 6), got %v", s)
	}

	e := b.Expand(-0.5)
	if s := e.Size(); s != NewVec3(3, 1, 5) {
		t.Errorf("Expected shrunk size (3, 1, 5), got %v", s)
	}
}

func TestLerpVec3(t *testing.T) {
	a := NewVec3(0, 0, 7)
	b := NewVec3(1, 0, 6)

	mid := LerpVec3(a, b, 0.5)
	if math.Abs(mid.X-0.5) > 1e-9 || math.Abs(mid.Z-6.5) > 1e-9 {
		t.Errorf("Expected (0.5, 0, 6.5), got %v", mid)
	}
	if LerpVec3(a, b, 0) != a || LerpVec3(a, b, 1) != b {
		t.Error("Expected endpoints to be exact")
	}
}

func TestClampAndAbs(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp returned an unexpected value")
	}
	if Abs(-2.5) != 2.5 || Abs(3) != 3 {
		t.Error("Abs returned an unexpected value")
	}
}
