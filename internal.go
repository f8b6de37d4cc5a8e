// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

import (
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/bitptr/internal/bo"
)

// Element access.
//
// Every access is one atomic operation on the referent. 32- and 64-bit elements
// use the matching sync/atomic primitive directly. 8- and 16-bit elements have
// no atomic primitive of their own, so they are accessed through the aligned
// 32-bit word that contains them: loads extract the element's lane and
// read-modify-writes shift the mask into that lane, so neighbouring bytes in
// the same word are never modified. They are still part of the atomic access,
// so callers must not store to them non-atomically at the same time. The lane
// offset depends on host byte order.

func load[T Element](p unsafe.Pointer) T {
	var zero T
	switch size := unsafe.Sizeof(zero); size {
	case 8:
		return T(atomic.LoadUint64((*uint64)(p)))
	case 4:
		return T(atomic.LoadUint32((*uint32)(p)))
	default:
		w, shift := lane(p, size)
		return T(atomic.LoadUint32(w) >> shift)
	}
}

// or sets the bits of mask in *p and returns the previous element value.
func or[T Element](p unsafe.Pointer, mask T) (old T) {
	var zero T
	switch size := unsafe.Sizeof(zero); size {
	case 8:
		return T(atomic.OrUint64((*uint64)(p), uint64(mask)))
	case 4:
		return T(atomic.OrUint32((*uint32)(p), uint32(mask)))
	default:
		w, shift := lane(p, size)
		return T(atomic.OrUint32(w, uint32(mask)<<shift) >> shift)
	}
}

// and clears the bits of *p that are clear in mask and returns the previous element value.
func and[T Element](p unsafe.Pointer, mask T) (old T) {
	var zero T
	switch size := unsafe.Sizeof(zero); size {
	case 8:
		return T(atomic.AndUint64((*uint64)(p), uint64(mask)))
	case 4:
		return T(atomic.AndUint32((*uint32)(p), uint32(mask)))
	default:
		w, shift := lane(p, size)
		return T(atomic.AndUint32(w, ^(uint32(^mask)<<shift)) >> shift)
	}
}

// lane returns the aligned 32-bit word containing the size-byte element at p
// and the left shift of that element inside the word's numeric value.
func lane(p unsafe.Pointer, size uintptr) (*uint32, uint) {
	off := uintptr(p) & 3
	w := (*uint32)(unsafe.Add(p, -int(off)))
	if bo.BigEndian() {
		return w, uint(4-size-off) * 8
	}
	return w, uint(off) * 8
}
