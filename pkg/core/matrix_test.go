package core

import (
	"errors"
	"math"
	"testing"
)

func TestMatrix4_Multiply(t *testing.T) {
	a := NewMatrix4([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	})
	b := NewMatrix4([4][4]float64{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	})
	expected := NewMatrix4([4][4]float64{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	})

	if got := a.Multiply(b); got != expected {
		t.Errorf("Expected\n%v got\n%v", expected, got)
	}
	if got := a.Multiply(Identity()); got != a {
		t.Errorf("A × I should equal A, got\n%v", got)
	}
}

func TestMatrix4_IdentityPreservesTuples(t *testing.T) {
	p := NewPoint(1, 2, 3)
	v := NewVec3(-4, 5, 0.5)
	if got := Identity().MultiplyPoint(p); got != p {
		t.Errorf("I × p: expected %v, got %v", p, got)
	}
	if got := Identity().MultiplyVec(v); got != v {
		t.Errorf("I × v: expected %v, got %v", v, got)
	}
}

func TestMatrix4_Transpose(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	})
	expected := NewMatrix4([4][4]float64{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	})
	if got := m.Transpose(); got != expected {
		t.Errorf("Expected\n%v got\n%v", expected, got)
	}
	if got := Identity().Transpose(); got != Identity() {
		t.Error("Transpose of identity should be identity")
	}
}

func TestMatrix4_Determinant(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	})

	cofactors := []struct {
		row, col int
		expected float64
	}{
		{0, 0, 690},
		{0, 1, 447},
		{0, 2, 210},
		{0, 3, 51},
	}
	for _, c := range cofactors {
		if got := m.Cofactor(c.row, c.col); got != c.expected {
			t.Errorf("Cofactor(%d,%d): expected %f, got %f", c.row, c.col, c.expected, got)
		}
	}

	if got := m.Determinant(); got != -4071 {
		t.Errorf("Expected determinant -4071, got %f", got)
	}
}

func TestMatrix4_Invertibility(t *testing.T) {
	invertible := NewMatrix4([4][4]float64{
		{6, 4, 4, 4},
		{5, 5, 7, 6},
		{4, -9, 3, -7},
		{9, 1, 7, -6},
	})
	if !invertible.IsInvertible() {
		t.Error("Expected matrix with determinant -2120 to be invertible")
	}

	singular := NewMatrix4([4][4]float64{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	})
	if singular.IsInvertible() {
		t.Error("Expected matrix with zero determinant to be singular")
	}
	if _, err := singular.Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}
	if _, err := Scaling(0, 1, 1).Inverse(); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Zero scale should be singular, got %v", err)
	}
}

func TestMatrix4_Inverse(t *testing.T) {
	m := NewMatrix4([4][4]float64{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	})
	expected := NewMatrix4([4][4]float64{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	})

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !inv.ApproxEqual(expected) {
		t.Errorf("Expected\n%v got\n%v", expected, inv)
	}
}

func TestMatrix4_InverseRoundTrip(t *testing.T) {
	matrices := map[string]Matrix4{
		"general": NewMatrix4([4][4]float64{
			{3, -9, 7, 3},
			{3, -8, 2, -9},
			{-4, 4, 4, 1},
			{-6, 5, -1, 1},
		}),
		"translation": Translation(5, -3, 2),
		"composite":   Identity().RotatedX(math.Pi / 3).Scaled(2, 0.5, 4).Sheared(1, 0, 0, 0.5, 0, 0).Translated(1, 2, 3),
	}

	for name, m := range matrices {
		t.Run(name, func(t *testing.T) {
			inv, err := m.Inverse()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := m.Multiply(inv); !got.ApproxEqual(Identity()) {
				t.Errorf("M × M⁻¹ should be identity, got\n%v", got)
			}
			back, err := inv.Inverse()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !back.ApproxEqual(m) {
				t.Errorf("(M⁻¹)⁻¹ should equal M, got\n%v", back)
			}
		})
	}
}

func TestMatrix4_Transformations(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix4
		point    Point
		expected Point
	}{
		{"translation", Translation(5, -3, 2), NewPoint(-3, 4, 5), NewPoint(2, 1, 7)},
		{"scaling", Scaling(2, 3, 4), NewPoint(-4, 6, 8), NewPoint(-8, 18, 32)},
		{"reflection", Scaling(-1, 1, 1), NewPoint(2, 3, 4), NewPoint(-2, 3, 4)},
		{"rotate x quarter", RotationX(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"rotate y quarter", RotationY(math.Pi / 2), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"rotate z quarter", RotationZ(math.Pi / 2), NewPoint(0, 1, 0), NewPoint(-1, 0, 0)},
		{"rotate x eighth", RotationX(math.Pi / 4), NewPoint(0, 1, 0), NewPoint(0, math.Sqrt2/2, math.Sqrt2/2)},
		{"shear x by y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(5, 3, 4)},
		{"shear x by z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(6, 3, 4)},
		{"shear y by x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 3, 4), NewPoint(2, 5, 4)},
		{"shear y by z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 3, 4), NewPoint(2, 7, 4)},
		{"shear z by x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 4), NewPoint(2, 3, 6)},
		{"shear z by y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 4), NewPoint(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyPoint(tt.point); !got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMatrix4_TranslationIgnoresVectors(t *testing.T) {
	v := NewVec3(-3, 4, 5)
	if got := Translation(5, -3, 2).MultiplyVec(v); got != v {
		t.Errorf("Translation should not move vectors, got %v", got)
	}
	if got := Scaling(2, 3, 4).MultiplyVec(v); got != NewVec3(-6, 12, 20) {
		t.Errorf("Scaling should scale vectors, got %v", got)
	}
}

func TestMatrix4_ChainedBuildersApplyInOrder(t *testing.T) {
	p := NewPoint(1, 0, 1)

	// Rotate, then scale, then translate
	chained := Identity().RotatedX(math.Pi/2).Scaled(5, 5, 5).Translated(10, 5, 7)
	if got := chained.MultiplyPoint(p); !got.ApproxEqual(NewPoint(15, 0, 7)) {
		t.Errorf("Expected (15,0,7), got %v", got)
	}

	manual := Translation(10, 5, 7).Multiply(Scaling(5, 5, 5)).Multiply(RotationX(math.Pi / 2))
	if !chained.ApproxEqual(manual) {
		t.Errorf("Chained builders should equal T×S×R, got\n%v want\n%v", chained, manual)
	}
}
