// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

import "cmp"

// Equal reports whether a and b address the same bit of the same memory.
//
// Pointers over element types with different representations are never equal.
// Mutability is ignored.
func Equal[O Order, T, U Element, M, N Mutability](a BitPtr[O, T, M], b BitPtr[O, U, N]) bool {
	if ReprOf[T]() != ReprOf[U]() {
		return false
	}
	return a.addr.Value() == b.addr.Value() && a.head.v == b.head.v
}

// PartialCompare orders a and b by address value, then by index value.
//
// ok is false when the element representations differ and the pointers are
// incomparable. Otherwise c is -1, 0 or +1.
func PartialCompare[O Order, T, U Element, M, N Mutability](a BitPtr[O, T, M], b BitPtr[O, U, N]) (c int, ok bool) {
	if ReprOf[T]() != ReprOf[U]() {
		return 0, false
	}
	if c = cmp.Compare(a.addr.Value(), b.addr.Value()); c != 0 {
		return c, true
	}
	return cmp.Compare(a.head.v, b.head.v), true
}

// Equal reports whether p and q address the same bit.
func (p BitPtr[O, T, M]) Equal(q BitPtr[O, T, M]) bool { return Equal(p, q) }

// Compare returns -1, 0 or +1 ordering p against q, suitable for slices.SortFunc.
func (p BitPtr[O, T, M]) Compare(q BitPtr[O, T, M]) int {
	c, ok := PartialCompare(p, q)
	if !ok {
		panic("bitptr: BitPtr should have a total ordering")
	}
	return c
}
