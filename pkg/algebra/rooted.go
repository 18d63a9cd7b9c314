package algebra

import (
	"fmt"
	"strings"
)

// ComplexRootedPolynomial is an immutable complex polynomial in root form,
// evaluated as the product of (z - root) over its ordered roots.
type ComplexRootedPolynomial struct {
	roots []Complex
}

// NewComplexRootedPolynomial creates a polynomial from its roots
func NewComplexRootedPolynomial(roots ...Complex) ComplexRootedPolynomial {
	copied := make([]Complex, len(roots))
	copy(copied, roots)
	return ComplexRootedPolynomial{roots: copied}
}

// RootCount returns the number of roots
func (p ComplexRootedPolynomial) RootCount() int {
	return len(p.roots)
}

// Apply evaluates the root-product form directly at the point z
func (p ComplexRootedPolynomial) Apply(z Complex) Complex {
	value := One
	for _, root := range p.roots {
		value = value.Mul(z.Sub(root))
	}
	return value
}

// ToPolynomial converts the root form to coefficient form by iterative
// expansion, starting from the constant polynomial {1}
func (p ComplexRootedPolynomial) ToPolynomial() ComplexPolynomial {
	result := NewComplexPolynomial(One)
	for _, root := range p.roots {
		result = result.Multiply(NewComplexPolynomial(root.Negate(), One))
	}
	return result
}

// IndexOfClosestRoot returns the index of the root nearest to z whose
// distance is within the given threshold, or -1 if no root qualifies. The
// running best distance starts at the threshold and narrows as closer roots
// are found, so the result is the globally nearest qualifying root.
func (p ComplexRootedPolynomial) IndexOfClosestRoot(z Complex, threshold float64) int {
	index := -1
	for i, root := range p.roots {
		diff := z.Sub(root).Abs()
		if diff <= threshold {
			threshold = diff
			index = i
		}
	}
	return index
}

// String formats the polynomial as a product of "(z - root)" terms
func (p ComplexRootedPolynomial) String() string {
	var sb strings.Builder
	sb.WriteString("f(z) = ")
	for _, root := range p.roots {
		sb.WriteString("(z")
		re, im := root.Real(), root.Imag()
		switch {
		case (re == 0 && im < 0) || (im == 0 && re < 0):
			fmt.Fprintf(&sb, "+%s", root.Negate())
		case re == 0 || im == 0:
			fmt.Fprintf(&sb, "-%s", root)
		default:
			fmt.Fprintf(&sb, "-(%s)", root)
		}
		sb.WriteString(")")
	}
	return sb.String()
}
