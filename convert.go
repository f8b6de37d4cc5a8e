// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

import "unsafe"

// FromRef returns a read-only pointer to bit 0 of *r. It panics if r is nil.
func FromRef[O Order, T Element](r *T) BitPtr[O, T, Const] {
	p := Dangling[O, T, Const]()
	p.addr = AddressOf(r)
	return p
}

// FromMut returns a read-write pointer to bit 0 of *r. It panics if r is nil.
func FromMut[O Order, T Element](r *T) BitPtr[O, T, Mut] {
	p := Dangling[O, T, Mut]()
	p.addr = MutAddressOf(r)
	return p
}

// FromAddress returns a read-write pointer to bit 0 of the element at a.
func FromAddress[O Order, T Element](a Address[T, Mut]) BitPtr[O, T, Mut] {
	p := Dangling[O, T, Mut]()
	p.addr = a
	return p
}

// FromPointer validates ptr and returns a read-only pointer to bit 0 of the T
// it addresses. See NewAddress for the failure cases.
func FromPointer[O Order, T Element](ptr unsafe.Pointer) (BitPtr[O, T, Const], error) {
	a, err := NewAddress[T, Const](ptr)
	if err != nil {
		return BitPtr[O, T, Const]{}, err
	}
	p := Dangling[O, T, Const]()
	p.addr = a
	return p, nil
}

// FromMutPointer validates ptr and returns a read-write pointer to bit 0 of the
// T it addresses. See NewAddress for the failure cases.
func FromMutPointer[O Order, T Element](ptr unsafe.Pointer) (BitPtr[O, T, Mut], error) {
	a, err := NewAddress[T, Mut](ptr)
	if err != nil {
		return BitPtr[O, T, Mut]{}, err
	}
	p := Dangling[O, T, Mut]()
	p.addr = a
	return p, nil
}
