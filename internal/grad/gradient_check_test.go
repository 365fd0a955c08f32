package grad_test

import (
	"math"
	"testing"

	"github.com/mkualquiera/mkgrad/internal/grad"
)

// numericalGradient computes the gradient using central finite
// differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// TestNumericalGradient_Product tests f(x) = 3x against the autodiff
// gradient.
func TestNumericalGradient_Product(t *testing.T) {
	epsilon := 1e-6
	testPoint := 5.0

	// Autodiff gradient
	x := grad.FromValue(testPoint)
	y := x.MulValue(3.0)
	grad.Backward(y)
	autodiffGrad := x.Grad()

	// Numerical gradient
	f := func(v float64) float64 { return v * 3.0 }
	numericalGrad := numericalGradient(f, testPoint, epsilon)

	// Expected: df/dx = 3
	if math.Abs(autodiffGrad-3.0) > 1e-9 {
		t.Errorf("Autodiff gradient = %f, want 3", autodiffGrad)
	}
	if math.Abs(autodiffGrad-numericalGrad) > 1e-4 {
		t.Errorf("Autodiff grad (%f) differs from numerical grad (%f)",
			autodiffGrad, numericalGrad)
	}
}

// TestNumericalGradient_SharedSubexpression tests f(x) = (x*3)*x = 3x²,
// exercising the shared-node path: df/dx = 6x.
func TestNumericalGradient_SharedSubexpression(t *testing.T) {
	epsilon := 1e-6
	testPoint := 2.5

	// Autodiff gradient
	x := grad.FromValue(testPoint)
	y := x.MulValue(3.0).Mul(x)
	grad.Backward(y)
	autodiffGrad := x.Grad()

	// Numerical gradient
	f := func(v float64) float64 { return (v * 3.0) * v }
	numericalGrad := numericalGradient(f, testPoint, epsilon)

	// Expected: df/dx = 6x = 15
	if math.Abs(autodiffGrad-15.0) > 1e-9 {
		t.Errorf("Autodiff gradient = %f, want 15", autodiffGrad)
	}
	if math.Abs(autodiffGrad-numericalGrad) > 1e-4 {
		t.Errorf("Autodiff grad (%f) differs from numerical grad (%f)",
			autodiffGrad, numericalGrad)
	}
}

// TestNumericalGradient_Cube tests f(x) = x*x*x: df/dx = 3x².
func TestNumericalGradient_Cube(t *testing.T) {
	epsilon := 1e-6
	testPoint := 1.5

	x := grad.FromValue(testPoint)
	y := x.Mul(x).Mul(x)
	grad.Backward(y)
	autodiffGrad := x.Grad()

	f := func(v float64) float64 { return v * v * v }
	numericalGrad := numericalGradient(f, testPoint, epsilon)

	expected := 3 * testPoint * testPoint
	if math.Abs(autodiffGrad-expected) > 1e-9 {
		t.Errorf("Autodiff gradient = %f, want %f", autodiffGrad, expected)
	}
	if math.Abs(autodiffGrad-numericalGrad) > 1e-4 {
		t.Errorf("Autodiff grad (%f) differs from numerical grad (%f)",
			autodiffGrad, numericalGrad)
	}
}
