// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

// Index is the semantic position of a bit inside one T.
//
// An Index is always in [0, BitWidth[T]()). The zero value is index 0.
type Index[T Element] struct{ v uint8 }

// NewIndex validates v against the width of T.
func NewIndex[T Element](v uint) (Index[T], error) {
	if w := uint(BitWidth[T]()); v >= w {
		return Index[T]{}, &IndexError{Value: v, Width: w}
	}
	return Index[T]{v: uint8(v)}, nil
}

// MustIndex is like NewIndex but panics when v is out of range.
func MustIndex[T Element](v uint) Index[T] {
	i, err := NewIndex[T](v)
	if err != nil {
		panic(err)
	}
	return i
}

// Value returns the numeric index.
func (i Index[T]) Value() uint8 { return i.v }
