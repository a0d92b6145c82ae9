// Package seq offers a lazy iterator and callback-style traversal for slices.
package seq

// Iterator is a lazy, pull-based iterator.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		},
	}
}

// ForEach drains it, calling fn once per element in order. Each call receives
// its own copy of the element as the parameter.
//
// Example:
//
//	seq.ForEach(seq.FromSlice([]int{1, 2}), func(v int) {
//		fmt.Println(v)
//	})
func ForEach[T any](it Iterator[T], fn func(T)) {
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// ToSlice exhausts the iterator and collects its values.
func ToSlice[T any](it Iterator[T]) []T {
	var result []T
	ForEach(it, func(v T) {
		result = append(result, v)
	})
	if result == nil {
		return []T{}
	}
	return result
}
