// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

import (
	"errors"
	"strconv"
)

var (
	// ErrNullAddress reports a nil element address.
	ErrNullAddress = errors.New("bitptr: null address")

	// ErrMisaligned reports an element address that is not aligned for its element type.
	ErrMisaligned = errors.New("bitptr: misaligned address")

	// ErrIndexOutOfRange reports a bit index at or beyond the element width.
	ErrIndexOutOfRange = errors.New("bitptr: bit index out of range")

	// ErrInvalidOrder reports a bit order that is not a permutation of the element's bits.
	ErrInvalidOrder = errors.New("bitptr: invalid bit order")
)

// AddressError is returned when an element address fails validation.
// It unwraps to ErrNullAddress or ErrMisaligned.
type AddressError struct {
	Addr  uintptr
	Align uintptr
	Err   error
}

func (e *AddressError) Error() string {
	if e.Err == ErrMisaligned {
		return e.Err.Error() + " 0x" + strconv.FormatUint(uint64(e.Addr), 16) +
			" (requires " + strconv.FormatUint(uint64(e.Align), 10) + "-byte alignment)"
	}
	return e.Err.Error()
}

func (e *AddressError) Unwrap() error { return e.Err }

// IndexError is returned when a bit index does not fit its element.
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Value uint
	Width uint
}

func (e *IndexError) Error() string {
	return ErrIndexOutOfRange.Error() + ": " + strconv.FormatUint(uint64(e.Value), 10) +
		" not in [0, " + strconv.FormatUint(uint64(e.Width), 10) + ")"
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
