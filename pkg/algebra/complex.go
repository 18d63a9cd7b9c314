package algebra

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrZeroDivisor is returned when dividing by a complex number whose
// squared magnitude is zero.
var ErrZeroDivisor = errors.New("algebra: division by zero")

// ErrNegativeExponent is returned when a power or root is requested with a
// negative n.
var ErrNegativeExponent = errors.New("algebra: exponent must not be negative")

// Complex is an immutable complex number. The magnitude and angle are
// derived once at construction; the angle is shifted into [0, 2π).
type Complex struct {
	re, im    float64
	magnitude float64
	angle     float64
}

// Frequently used complex constants.
var (
	Zero   = NewComplex(0, 0)
	One    = NewComplex(1, 0)
	OneNeg = NewComplex(-1, 0)
	I      = NewComplex(0, 1)
	INeg   = NewComplex(0, -1)
)

// NewComplex creates a complex number from its real and imaginary parts
func NewComplex(re, im float64) Complex {
	return Complex{
		re:        re,
		im:        im,
		magnitude: math.Sqrt(re*re + im*im),
		// adding π keeps the angle between 0 and 2π
		angle: math.Atan2(im, re) + math.Pi,
	}
}

// FromPolar creates a complex number from a magnitude and an angle
func FromPolar(magnitude, angle float64) Complex {
	return NewComplex(magnitude*math.Cos(angle), magnitude*math.Sin(angle))
}

// Real returns the real part of the complex number
func (c Complex) Real() float64 {
	return c.re
}

// Imag returns the imaginary part of the complex number
func (c Complex) Imag() float64 {
	return c.im
}

// Abs returns the magnitude of the complex number
func (c Complex) Abs() float64 {
	return c.magnitude
}

// Add returns the sum of two complex numbers
func (c Complex) Add(other Complex) Complex {
	return NewComplex(c.re+other.re, c.im+other.im)
}

// Sub returns the difference of two complex numbers
func (c Complex) Sub(other Complex) Complex {
	return NewComplex(c.re-other.re, c.im-other.im)
}

// Mul returns the product of two complex numbers
func (c Complex) Mul(other Complex) Complex {
	re := c.re*other.re - c.im*other.im
	im := c.re*other.im + c.im*other.re
	return NewComplex(re, im)
}

// Div returns the quotient of two complex numbers. It returns
// ErrZeroDivisor if the divisor's squared magnitude is zero.
func (c Complex) Div(other Complex) (Complex, error) {
	denominator := other.re*other.re + other.im*other.im
	if denominator == 0 {
		return Zero, ErrZeroDivisor
	}
	re := (c.re*other.re + c.im*other.im) / denominator
	im := (c.im*other.re - c.re*other.im) / denominator
	return NewComplex(re, im), nil
}

// Negate returns the complex number with both components negated
func (c Complex) Negate() Complex {
	return NewComplex(-c.re, -c.im)
}

// Power returns the n-th power of the complex number, computed by repeated
// multiplication. It returns ErrNegativeExponent for n < 0.
func (c Complex) Power(n int) (Complex, error) {
	if n < 0 {
		return Zero, ErrNegativeExponent
	}
	return c.pow(n), nil
}

// pow is Power without the sign check, for internal callers with n >= 0
func (c Complex) pow(n int) Complex {
	result := One
	for i := 0; i < n; i++ {
		result = result.Mul(c)
	}
	return result
}

// Roots returns the n-th roots of the complex number: n values at
// magnitude^(1/n) and angles (angle + 2πk)/n for k = 0..n-1. It returns
// ErrNegativeExponent for n < 0.
func (c Complex) Roots(n int) ([]Complex, error) {
	if n < 0 {
		return nil, ErrNegativeExponent
	}
	roots := make([]Complex, 0, n)
	magnitude := math.Pow(c.magnitude, 1.0/float64(n))
	for k := 0; k < n; k++ {
		angle := (c.angle + 2.0*float64(k)*math.Pi) / float64(n)
		roots = append(roots, FromPolar(magnitude, angle))
	}
	return roots, nil
}

// complexPattern accepts literals with an optional real term and an optional
// signed imaginary term, where a bare "i" or "-i" denotes a coefficient of
// ±1: "3.51", "-3.17", "-i2.71", "i", "1", "-2.71 - i3.15", "2 + i".
var complexPattern = regexp.MustCompile(
	`^(?:([+-]?\d*\.?\d+) ?([+-] ?i(\d*\.?\d+)?)|([+-]?\d*\.?\d+)|(-?i(\d*\.?\d+)?))$`)

// ParseComplex parses a complex number literal. It returns an error if the
// string does not match the accepted literal grammar.
func ParseComplex(s string) (Complex, error) {
	groups := complexPattern.FindStringSubmatch(s)
	if groups == nil {
		return Zero, fmt.Errorf("algebra: cannot parse %q as a complex number", s)
	}

	var re, im float64
	var err error
	if groups[1] != "" {
		// both a real and an imaginary term are present
		re, err = strconv.ParseFloat(groups[1], 64)
	} else if groups[4] != "" {
		// a real term only
		re, err = strconv.ParseFloat(groups[4], 64)
	}
	if err != nil {
		return Zero, fmt.Errorf("algebra: cannot parse %q as a complex number: %w", s, err)
	}

	imTerm := groups[2]
	if imTerm == "" {
		imTerm = groups[5]
	}
	if imTerm != "" {
		expr := strings.Replace(imTerm, "i", "", 1)
		expr = strings.ReplaceAll(expr, " ", "")
		switch expr {
		case "", "+":
			im = 1
		case "-":
			im = -1
		default:
			im, err = strconv.ParseFloat(expr, 64)
			if err != nil {
				return Zero, fmt.Errorf("algebra: cannot parse %q as a complex number: %w", s, err)
			}
		}
	}

	return NewComplex(re, im), nil
}

// formatComponent renders a component rounded to at most two decimals,
// without trailing zeros
func formatComponent(v float64) string {
	return strconv.FormatFloat(math.RoundToEven(v*100)/100, 'f', -1, 64)
}

// String formats the complex number in the same shape the parser accepts,
// e.g. "0", "3.51", "-i2.71", "i", "-2.71 - i3.15", "2 + i"
func (c Complex) String() string {
	var sb strings.Builder
	if c.re == 0 && c.im == 0 {
		sb.WriteString("0")
	}
	if c.re != 0 {
		sb.WriteString(formatComponent(c.re))
	}
	if c.im != 0 {
		switch {
		case c.im > 0 && c.re != 0:
			sb.WriteString(" + ")
		case c.im < 0 && c.re != 0:
			sb.WriteString(" - ")
		case c.im < 0:
			sb.WriteString("-")
		}
		sb.WriteString("i")
		if c.im != 1 && c.im != -1 {
			sb.WriteString(formatComponent(math.Abs(c.im)))
		}
	}
	return sb.String()
}
