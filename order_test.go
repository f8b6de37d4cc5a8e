// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/bitptr"
)

func TestLsb0Msb0_Positions(t *testing.T) {
	for _, w := range []uint8{8, 16, 32, 64} {
		for i := uint8(0); i < w; i++ {
			if p := (bitptr.Lsb0{}).Position(i, w); p != i {
				t.Fatalf("Lsb0(%d,%d)=%d want %d", i, w, p, i)
			}
			if p := (bitptr.Msb0{}).Position(i, w); p != w-1-i {
				t.Fatalf("Msb0(%d,%d)=%d want %d", i, w, p, w-1-i)
			}
		}
	}
}

// nibbleSwap exchanges the two 4-bit halves of each byte.
type nibbleSwap struct{}

func (nibbleSwap) Position(index, _ uint8) uint8 { return index ^ 4 }

// stuck maps everything to bit 0.
type stuck struct{}

func (stuck) Position(uint8, uint8) uint8 { return 0 }

// overflow maps index i to i+1.
type overflow struct{}

func (overflow) Position(index, _ uint8) uint8 { return index + 1 }

func TestVerifyOrder(t *testing.T) {
	if err := bitptr.VerifyOrder[bitptr.Lsb0, uint64](); err != nil {
		t.Fatalf("Lsb0: %v", err)
	}
	if err := bitptr.VerifyOrder[bitptr.Msb0, uint8](); err != nil {
		t.Fatalf("Msb0: %v", err)
	}
	if err := bitptr.VerifyOrder[nibbleSwap, uint32](); err != nil {
		t.Fatalf("nibbleSwap: %v", err)
	}
	if err := bitptr.VerifyOrder[stuck, uint16](); !errors.Is(err, bitptr.ErrInvalidOrder) {
		t.Fatalf("stuck: err=%v want ErrInvalidOrder", err)
	}
	if err := bitptr.VerifyOrder[overflow, uint8](); !errors.Is(err, bitptr.ErrInvalidOrder) {
		t.Fatalf("overflow: err=%v want ErrInvalidOrder", err)
	}
}

func TestCustomOrder_ReadWrite(t *testing.T) {
	var elem uint8
	p := bitptr.FromParts[nibbleSwap](bitptr.MutAddressOf(&elem), bitptr.MustIndex[uint8](1))
	bitptr.Write(p, true)
	if elem != 1<<5 {
		t.Fatalf("elem=%08b want 00100000", elem)
	}
	if !p.Read() {
		t.Fatalf("read=false after write")
	}
}

func TestUnverifiedOrder_OutOfRangeSelectsNoBit(t *testing.T) {
	var elem uint8
	p := bitptr.FromParts[overflow](bitptr.MutAddressOf(&elem), bitptr.MustIndex[uint8](7))
	if pos := p.Position(); pos != 8 {
		t.Fatalf("Position()=%d want 8", pos)
	}
	bitptr.Write(p, true)
	if elem != 0 {
		t.Fatalf("elem=%08b want 0", elem)
	}
	if p.Read() {
		t.Fatalf("Read()=true through an out-of-range position")
	}
	elem = 0xFF
	if p.Read() {
		t.Fatalf("Read()=true on a full element through an out-of-range position")
	}
}
