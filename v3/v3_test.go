package v3

import (
	"fmt"
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 0, 0, 0, 2, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
	fmt.Println("test matrix:", A.RawMatrix().Data)
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("A 4-element slice should not give a Nx3 matrix")
	}
}

func TestDotNorm(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 0, 0, 0, 2, 0})
	B, _ := NewMatrix([]float64{0, 3, 0, 0, 1, 0})
	dot := A.Dot(B)
	if dot != 2 {
		Te.Errorf("Expected flattened dot 2, got %v", dot)
	}
	norm := A.Norm()
	want := math.Sqrt(5)
	if math.Abs(norm-want) > 1e-12 {
		Te.Errorf("Expected norm %v, got %v", want, norm)
	}
}

func TestVecView(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	v := A.VecView(1)
	if v.At(0, 0) != 4 || v.At(0, 2) != 6 {
		Te.Error("VecView returned the wrong vector")
	}
	//views are shared memory
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("Change in view not reflected in the viewed matrix")
	}
}

func TestSwapVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	A.SwapVecs(0, 1)
	if A.At(0, 0) != 4 || A.At(1, 2) != 3 {
		Te.Errorf("Vectors not swapped: %v", A.RawMatrix().Data)
	}
}

func TestUnit(Te *testing.T) {
	A, _ := NewMatrix([]float64{3, 0, 0, 4, 0, 0})
	U := Zeros(2)
	if err := U.Unit(A); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(U.Norm()-1) > 1e-12 {
		Te.Errorf("Expected unit norm, got %v", U.Norm())
	}
	Z := Zeros(2)
	if err := Z.Unit(Zeros(2)); err == nil {
		Te.Error("Normalizing a zero matrix should fail")
	}
}
