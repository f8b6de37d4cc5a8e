// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bitptr provides an opaque, typed pointer to a single bit inside a
// memory element. It is the addressing primitive for bit-precision containers.
//
// Semantics and design:
//   - A BitPtr[O, T, M] is an element Address plus an Index of a bit inside that
//     element. O chooses how indices map to physical bit positions (Lsb0, Msb0
//     or a user Order), T is the element type, and M is the capability tag
//     (Const or Mut).
//   - Values are plain data. Copying a BitPtr never copies, owns or releases the
//     referent; holding one implies no exclusivity.
//   - A BitPtr is never reinterpreted as a general pointer. Its address is only
//     observable as a number, and the referent is only reached through Read,
//     Write and Replace.
//   - Write and Replace are package functions whose parameter is the Mut
//     instantiation, so writing through a Const pointer does not compile.
//   - Construction validates the address (non-nil, aligned for T). The index is
//     validated by NewIndex. Nothing is rechecked on dereference.
//
// Dereference contract: Read, Write and Replace trust the caller. The referent
// element must be allocated and live for the duration of the call; a pointer
// whose memory has been freed or reinterpreted is invalid, and using it is
// undefined behavior. Every access is a single atomic operation on the
// element (see the accessor notes in internal.go), so concurrent writers to
// different bits of the same element never lose each other's updates, and a
// concurrent Read observes either the old or the new bit.
//
// Access granularity: 8- and 16-bit elements are read and written through the
// aligned 32-bit word that contains them. Other bytes in that word, such as a
// neighbouring struct field or an unrelated small allocation, are never
// changed, but the race detector sees an atomic access to them. Memory that
// shares a 32-bit word with an element reached through this package must also
// be accessed atomically, for example through this package, or be separated
// from it by padding.
//
// Ordering: pointers whose element types share a memory representation (Repr)
// are compared by address value and then by index value. The bit order is not
// consulted, so two pointers into the same storage order consistently no matter
// which bit-numbering scheme they declare. Pointers with different
// representations are never equal and never ordered.
package bitptr

import (
	"fmt"
	"unsafe"
)

// BitPtr addresses one bit of one T.
//
// The zero BitPtr has a nil address and must not be dereferenced; use Dangling
// for a placeholder value.
type BitPtr[O Order, T Element, M Mutability] struct {
	addr Address[T, M]
	head Index[T]
}

// New validates addr and returns a pointer to bit head of the T at addr.
//
// It returns an *AddressError if addr is nil or not aligned for T. The index was
// validated when it was built and is not checked again.
func New[O Order, T Element, M Mutability](addr unsafe.Pointer, head Index[T]) (BitPtr[O, T, M], error) {
	a, err := NewAddress[T, M](addr)
	if err != nil {
		return BitPtr[O, T, M]{}, err
	}
	return FromParts[O](a, head), nil
}

// NewUnchecked is like New but does not validate addr.
//
// The caller guarantees that addr is non-nil, aligned for T, and refers to a T
// that stays valid for as long as the pointer is dereferenced. Violating this
// is undefined behavior.
func NewUnchecked[O Order, T Element, M Mutability](addr unsafe.Pointer, head Index[T]) BitPtr[O, T, M] {
	return BitPtr[O, T, M]{addr: Address[T, M]{p: addr}, head: head}
}

// FromParts joins an already validated address and index. It is the inverse of RawParts.
func FromParts[O Order, T Element, M Mutability](addr Address[T, M], head Index[T]) BitPtr[O, T, M] {
	return BitPtr[O, T, M]{addr: addr, head: head}
}

// Dangling returns the sentinel pointer: the dangling address and index 0.
// It must never be dereferenced.
func Dangling[O Order, T Element, M Mutability]() BitPtr[O, T, M] {
	return BitPtr[O, T, M]{addr: DanglingAddress[T, M]()}
}

// RawParts returns the element address and the bit index.
func (p BitPtr[O, T, M]) RawParts() (Address[T, M], Index[T]) {
	return p.addr, p.head
}

// Position returns the physical bit position that the index maps to under O.
func (p BitPtr[O, T, M]) Position() uint8 {
	var o O
	return o.Position(p.head.v, BitWidth[T]())
}

// Const drops the write capability.
func (p BitPtr[O, T, M]) Const() BitPtr[O, T, Const] {
	return BitPtr[O, T, Const]{addr: p.addr.Const(), head: p.head}
}

// Read loads the referent bit.
//
// The caller guarantees the referent element is allocated and initialized.
func (p BitPtr[O, T, M]) Read() bool {
	return load[T](p.addr.p)&p.mask() != 0
}

// Write sets or clears the referent bit and leaves every other bit of the
// element unchanged.
//
// The caller guarantees the referent element is allocated and initialized.
func Write[O Order, T Element](p BitPtr[O, T, Mut], value bool) {
	Replace(p, value)
}

// Replace writes value to the referent bit and returns the bit it replaced, as
// one atomic operation.
func Replace[O Order, T Element](p BitPtr[O, T, Mut], value bool) bool {
	mask := p.mask()
	var old T
	if value {
		old = or(p.addr.p, mask)
	} else {
		old = and(p.addr.p, ^mask)
	}
	return old&mask != 0
}

func (p BitPtr[O, T, M]) mask() T {
	return T(1) << p.Position()
}

// String formats the pointer as address.index, for example 0xc000012340.3.
func (p BitPtr[O, T, M]) String() string {
	return fmt.Sprintf("%#x.%d", p.addr.Value(), p.head.v)
}
