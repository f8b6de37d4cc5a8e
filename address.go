// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

import "unsafe"

// dangling backs every dangling address. It is 64-bit aligned, so it is aligned
// for every element width.
var dangling uint64

// Address is a validated address of one T, tagged with a capability M.
//
// Addresses built by NewAddress, AddressOf, MutAddressOf and DanglingAddress are
// never nil and always aligned for T. Address never hands the pointer back out;
// only the numeric value is observable. The zero Address is not valid.
type Address[T Element, M Mutability] struct {
	p unsafe.Pointer
}

// NewAddress validates p as the address of a T.
//
// It returns an *AddressError when p is nil or not aligned for atomic access
// to T.
func NewAddress[T Element, M Mutability](p unsafe.Pointer) (Address[T, M], error) {
	align := alignOf[T]()
	if p == nil {
		return Address[T, M]{}, &AddressError{Align: align, Err: ErrNullAddress}
	}
	if uintptr(p)%align != 0 {
		return Address[T, M]{}, &AddressError{Addr: uintptr(p), Align: align, Err: ErrMisaligned}
	}
	return Address[T, M]{p: p}, nil
}

// AddressOf returns the read-only address of *r. It panics if r is nil.
func AddressOf[T Element](r *T) Address[T, Const] {
	return Address[T, Const]{p: reference(r)}
}

// MutAddressOf returns the read-write address of *r. It panics if r is nil.
func MutAddressOf[T Element](r *T) Address[T, Mut] {
	return Address[T, Mut]{p: reference(r)}
}

// DanglingAddress returns the sentinel address. It is non-nil and aligned, and
// must never be dereferenced.
func DanglingAddress[T Element, M Mutability]() Address[T, M] {
	return Address[T, M]{p: unsafe.Pointer(&dangling)}
}

// Value returns the numeric address.
//
// The number is a snapshot. A variable on a goroutine stack moves when the
// stack grows; the Address follows it, but a previously returned Value does not.
func (a Address[T, M]) Value() uintptr { return uintptr(a.p) }

// IsDangling reports whether a is the sentinel address.
func (a Address[T, M]) IsDangling() bool { return a.p == unsafe.Pointer(&dangling) }

// Const drops the write capability.
func (a Address[T, M]) Const() Address[T, Const] { return Address[T, Const]{p: a.p} }

func reference[T Element](r *T) unsafe.Pointer {
	if r == nil {
		panic("bitptr: nil element reference")
	}
	return unsafe.Pointer(r)
}
