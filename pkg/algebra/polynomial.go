package algebra

import (
	"fmt"
	"strings"
)

// ComplexPolynomial is an immutable complex polynomial in coefficient form.
// Coefficients are ordered from degree 0 upward. Trailing zero coefficients
// are trimmed at construction down to a floor of one coefficient, so a
// polynomial always has at least one coefficient slot.
type ComplexPolynomial struct {
	factors []Complex
}

// NewComplexPolynomial creates a polynomial from coefficients ordered from
// degree 0 upward
func NewComplexPolynomial(factors ...Complex) ComplexPolynomial {
	trimmed := make([]Complex, len(factors))
	copy(trimmed, factors)
	for len(trimmed) > 1 && trimmed[len(trimmed)-1] == Zero {
		trimmed = trimmed[:len(trimmed)-1]
	}
	return ComplexPolynomial{factors: trimmed}
}

// Order returns the order of the polynomial (coefficient count - 1)
func (p ComplexPolynomial) Order() int {
	return len(p.factors) - 1
}

// Multiply returns the product of two polynomials by convolving their
// coefficient lists
func (p ComplexPolynomial) Multiply(other ComplexPolynomial) ComplexPolynomial {
	factors := make([]Complex, len(p.factors)+len(other.factors)-1)
	for i := range factors {
		factors[i] = Zero
	}
	for i, a := range p.factors {
		for j, b := range other.factors {
			factors[i+j] = factors[i+j].Add(a.Mul(b))
		}
	}
	return NewComplexPolynomial(factors...)
}

// Derive returns the first derivative of the polynomial. The derivative of
// a constant polynomial is the single coefficient zero.
func (p ComplexPolynomial) Derive() ComplexPolynomial {
	if len(p.factors) == 1 {
		return NewComplexPolynomial(Zero)
	}
	factors := make([]Complex, len(p.factors)-1)
	for i := range factors {
		factors[i] = p.factors[i+1].Mul(NewComplex(float64(i+1), 0))
	}
	return NewComplexPolynomial(factors...)
}

// Apply evaluates the polynomial at the point z by direct power summation,
// skipping exactly-zero coefficients
func (p ComplexPolynomial) Apply(z Complex) Complex {
	value := Zero
	for i, factor := range p.factors {
		if factor == Zero {
			continue
		}
		value = value.Add(factor.Mul(z.pow(i)))
	}
	return value
}

// String formats the polynomial as "f(z) = ..." from the highest degree down
func (p ComplexPolynomial) String() string {
	var sb strings.Builder
	sb.WriteString("f(z) = ")

	first := len(p.factors) - 1
	for i := first; i >= 0; i-- {
		factor := p.factors[i]
		if factor == Zero && len(p.factors) > 1 {
			continue
		}

		re, im := factor.Real(), factor.Imag()
		if re == 0 || im == 0 {
			if (re < 0 || im < 0) && i != first {
				sb.WriteString("  -  ")
				factor = factor.Negate()
				re, im = factor.Real(), factor.Imag()
			} else if i != first {
				sb.WriteString(" + ")
			}
			if re == -1 || im == -1 {
				sb.WriteString("-")
			} else if (re != 1 && im != 1) || i == 0 {
				sb.WriteString(factor.String())
			}
		} else {
			if i != first {
				sb.WriteString(" + ")
			}
			fmt.Fprintf(&sb, "(%s)", factor)
		}

		if i == 1 {
			sb.WriteString("z")
		} else if i != 0 {
			fmt.Fprintf(&sb, "z^%d", i)
		}
	}
	return sb.String()
}
