package domain

import (
	"strconv"
	"strings"
)

// Factors is an ordered prime-factor decomposition.
// A leading -1 carries the sign; 0 and 1 decompose to themselves.
type Factors []int64

// Product multiplies the factors back together.
// The empty sequence has product 1.
func (f Factors) Product() int64 {
	p := int64(1)
	for _, x := range f {
		p *= x
	}
	return p
}

// String renders the factors as a bracketed, comma separated list, e.g. "[-1, 2, 2, 3]".
func (f Factors) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range f {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(x, 10))
	}
	b.WriteByte(']')
	return b.String()
}
