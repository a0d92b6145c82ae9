// Package capture builds lists of closures inside different loop constructs
// and reports what each closure observes once the loop has finished.
//
// Example:
//
//	got := capture.Invoke(capture.Shared([]int{0, 1}))
//	fmt.Println(got) // [1 1]
package capture

import (
	"github.com/charmingruby/loopcapture/fp"
	"github.com/charmingruby/loopcapture/seq"
)

// Closure is a zero-argument callable returning the value it captured.
type Closure func() int

// Builder runs one loop construct over values and returns one closure per
// iteration, in iteration order.
type Builder func(values []int) []Closure

// Shared iterates with a single binding declared outside the loop and
// reassigned on every iteration. Every closure reads that one cell, so after
// the loop they all return the last element.
//
// Example:
//
//	capture.Invoke(capture.Shared([]int{0, 1})) // [1 1]
func Shared(values []int) []Closure {
	closures := make([]Closure, 0, len(values))
	var current int
	for i := 0; i < len(values); i++ {
		current = values[i]
		closures = append(closures, fp.Ref(&current))
	}
	return closures
}

// PerIteration traverses values with an iterator callback. The callback
// parameter is a new binding for each element and every closure snapshots
// its own.
//
// Example:
//
//	capture.Invoke(capture.PerIteration([]int{0, 1})) // [0 1]
func PerIteration(values []int) []Closure {
	closures := make([]Closure, 0, len(values))
	seq.ForEach(seq.FromSlice(values), func(v int) {
		closures = append(closures, fp.Constant(v))
	})
	return closures
}

// Range captures the range variable directly. Since go1.22 each iteration
// declares a fresh v, so this matches PerIteration.
func Range(values []int) []Closure {
	closures := make([]Closure, 0, len(values))
	for _, v := range values {
		closures = append(closures, func() int { return v })
	}
	return closures
}

// Invoke calls each closure once, in order, and collects the results.
func Invoke(closures []Closure) []int {
	return seq.Map(closures, func(c Closure) int { return c() })
}

// DefaultValues returns a fresh copy of the sequence every demo iterates over.
func DefaultValues() []int {
	return []int{0, 1}
}
