// Package fp provides small closure constructors that make capture semantics
// explicit.
//
// Example:
//
//	n := 1
//	byValue := fp.Constant(n)
//	byRef := fp.Ref(&n)
//	n = 2
//	fmt.Println(byValue(), byRef()) // 1 2
package fp

// Constant returns a function that always returns v. The value is copied when
// Constant is called, so later writes to the caller's variable are not seen.
//
// Example:
//
//	getDefault := Constant(time.Minute)
//	fmt.Println(getDefault())
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Ref returns a function that reads *p each time it is called. Every function
// built from the same pointer observes the same cell.
//
// Example:
//
//	cur := 0
//	read := Ref(&cur)
//	cur = 7
//	fmt.Println(read()) // 7
func Ref[T any](p *T) func() T {
	return func() T {
		return *p
	}
}
