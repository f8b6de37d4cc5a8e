//go:build !amd64 && !arm64 && !386 && !riscv64 && !ppc64le && !mips64le && !mipsle && !loong64 && !wasm && !arm && !s390x && !ppc64 && !mips && !mips64

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// Native returns the machine's native byte order on otherwise-unsupported ports.
func Native() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// BigEndian reports whether the host stores the most significant byte first.
func BigEndian() bool { return cpu.IsBigEndian }
