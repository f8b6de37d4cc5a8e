// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

import (
	"strconv"
	"unsafe"
)

// Element is the family of unsigned integer types that can back addressable bits.
//
// Named types are accepted, so a `type Flags uint8` field can be addressed the
// same way as a plain uint8.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Repr identifies the memory representation of an Element type.
//
// Two element types share a representation when they have the same width.
// Pointers are only equal or ordered relative to each other when their element
// representations match.
type Repr uint8

const (
	Repr8 Repr = iota + 1
	Repr16
	Repr32
	Repr64
)

func (r Repr) String() string {
	switch r {
	case Repr8:
		return "u8"
	case Repr16:
		return "u16"
	case Repr32:
		return "u32"
	case Repr64:
		return "u64"
	default:
		return "Repr(" + strconv.Itoa(int(r)) + ")"
	}
}

// ReprOf returns the memory representation of T.
func ReprOf[T Element]() Repr {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return Repr8
	case 2:
		return Repr16
	case 4:
		return Repr32
	default:
		return Repr64
	}
}

// BitWidth returns the number of bits in one T.
func BitWidth[T Element]() uint8 {
	var zero T
	return uint8(unsafe.Sizeof(zero) * 8)
}

// alignOf is the address alignment required to access a T atomically.
// 64-bit atomics need 8-byte alignment even where the Go type is 4-byte aligned.
func alignOf[T Element]() uintptr {
	var zero T
	if unsafe.Sizeof(zero) == 8 {
		return 8
	}
	return unsafe.Alignof(zero)
}
