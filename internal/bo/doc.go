// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo provides the host byte order.
//
// Sub-word element access needs to know where a byte or half-word sits inside
// the numeric value of its containing 32-bit word. Implementation is
// architecture-specific via build tags where commonly known, and falls back to
// golang.org/x/sys/cpu elsewhere.
package bo
