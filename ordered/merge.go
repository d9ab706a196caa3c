// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package ordered provides a stable merge over two already-sorted sequences.
package ordered

// Merge combines two non-decreasing slices a and b into a single
// non-decreasing slice containing every element of both. On ties, a's
// element is emitted first. Duplicates within or across the inputs are
// preserved, never collapsed. Behavior is only defined when a and b are
// each already sorted in non-decreasing order.
func Merge[T interface{ Compare(T) int }](a, b []T) []T {
	merged := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Compare(b[j]) <= 0 {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}

// Ordered is satisfied by any type with a strict total order via the
// built-in comparison operators (ints, floats, strings). MergeOrdered is a
// convenience wrapper over Merge for such types.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// MergeOrdered merges two non-decreasing slices of an ordinary ordered type.
// On ties, a's element comes first.
func MergeOrdered[T Ordered](a, b []T) []T {
	merged := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}
