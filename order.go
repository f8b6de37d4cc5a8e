// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

import "fmt"

// Order maps a semantic bit index to a physical bit position inside an element.
//
// Implementations are stateless struct types: the method is always invoked on
// the zero value of the type parameter. Position must be a permutation of
// [0, width) for every width in 8, 16, 32 and 64; VerifyOrder checks this.
//
// Physical position p denotes the bit with numeric weight 1<<p. A position at
// or beyond the width selects no bit at all: Write through such a pointer
// silently does nothing and Read reports false. Call VerifyOrder once for any
// custom order.
type Order interface {
	Position(index, width uint8) uint8
}

// Lsb0 numbers bits from the least significant end: index i is the bit of weight 1<<i.
type Lsb0 struct{}

func (Lsb0) Position(index, _ uint8) uint8 { return index }

// Msb0 numbers bits from the most significant end: index 0 is the bit of weight 1<<(width-1).
type Msb0 struct{}

func (Msb0) Position(index, width uint8) uint8 { return width - 1 - index }

// VerifyOrder reports whether O maps every index of T to a distinct in-range position.
func VerifyOrder[O Order, T Element]() error {
	var o O
	w := BitWidth[T]()
	var seen uint64
	for i := uint8(0); i < w; i++ {
		p := o.Position(i, w)
		if p >= w {
			return fmt.Errorf("%w: index %d maps to position %d of a %d-bit element", ErrInvalidOrder, i, p, w)
		}
		if seen&(1<<p) != 0 {
			return fmt.Errorf("%w: position %d is produced more than once", ErrInvalidOrder, p)
		}
		seen |= 1 << p
	}
	return nil
}
