// Package numbers analyzes small positive integers: divisors, primality and
// perfection.
package numbers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotPositive is returned for input that is not a positive integer.
var ErrNotPositive = errors.New("enter a positive integer")

// Report is the result of analyzing one number.
type Report struct {
	N        int
	Divisors []int
	Prime    bool
	Perfect  bool
}

// Divisors returns every divisor of n in ascending order.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}
	var small, large []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}

// IsPrime reports whether n is prime by trial division up to its square root.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// IsPerfect reports whether the proper divisors of n sum to n. divisors must
// be the full divisor list of n, as returned by Divisors.
func IsPerfect(n int, divisors []int) bool {
	if n < 2 {
		return false
	}
	sum := 0
	for _, d := range divisors {
		if d != n {
			sum += d
		}
	}
	return sum == n
}

// Parse parses a positive integer from user input.
func Parse(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, ErrNotPositive
	}
	return n, nil
}

// Analyze builds the report for n.
func Analyze(n int) (Report, error) {
	if n < 1 {
		return Report{}, ErrNotPositive
	}
	divs := Divisors(n)
	return Report{
		N:        n,
		Divisors: divs,
		Prime:    IsPrime(n),
		Perfect:  IsPerfect(n, divs),
	}, nil
}

// Expression returns the sum of proper divisors written out, e.g. 1+2+3=6.
// It is empty unless the number is perfect.
func (r Report) Expression() string {
	if !r.Perfect {
		return ""
	}
	parts := make([]string, 0, len(r.Divisors))
	for _, d := range r.Divisors {
		if d != r.N {
			parts = append(parts, strconv.Itoa(d))
		}
	}
	return strings.Join(parts, "+") + "=" + strconv.Itoa(r.N)
}

// String renders the report as printed by the analyzer command.
func (r Report) String() string {
	var sb strings.Builder
	divs := make([]string, len(r.Divisors))
	for i, d := range r.Divisors {
		divs[i] = strconv.Itoa(d)
	}
	fmt.Fprintf(&sb, "Divisors of %d: %s\n", r.N, strings.Join(divs, ", "))
	if r.Prime {
		fmt.Fprintf(&sb, "%d is prime\n", r.N)
	} else {
		fmt.Fprintf(&sb, "%d is not prime\n", r.N)
	}
	if r.Perfect {
		fmt.Fprintf(&sb, "%d is perfect: %s\n", r.N, r.Expression())
	} else {
		fmt.Fprintf(&sb, "%d is not perfect\n", r.N)
	}
	return sb.String()
}
