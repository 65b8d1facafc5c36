package formula

import (
	"fmt"
	"maps"
	"math"
	"sort"
)

// Counts maps an element symbol to its number of atoms.
type Counts map[string]int

// Add merges other into c, summing counts per symbol. Zero counts in other
// are skipped so c never gains a zero entry.
func (c Counts) Add(other Counts) error {
	for sym, n := range other {
		if n == 0 {
			continue
		}
		if c[sym] > math.MaxInt-n {
			return fmt.Errorf("%w: %s exceeds %d", ErrOverflow, sym, math.MaxInt)
		}
		c[sym] += n
	}
	return nil
}

// Scale multiplies every count in c by factor. c is left unchanged when any
// product would overflow.
func (c Counts) Scale(factor int) error {
	for sym, n := range c {
		if n != 0 && factor > math.MaxInt/n {
			return fmt.Errorf("%w: %s times %d exceeds %d", ErrOverflow, sym, factor, math.MaxInt)
		}
	}
	for sym, n := range c {
		c[sym] = n * factor
	}
	return nil
}

// Equal reports whether c and other hold the same symbol/count pairs.
func (c Counts) Equal(other Counts) bool {
	return maps.Equal(c, other)
}

// Total returns the number of atoms across all symbols.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Symbols returns the element symbols in ascending order.
func (c Counts) Symbols() []string {
	syms := make([]string, 0, len(c))
	for sym := range c {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

func (c Counts) Clone() Counts {
	return maps.Clone(c)
}
