// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bitptr

// Mutability is the closed set of capability tags carried by addresses and
// bit pointers.
type Mutability interface {
	Const | Mut
}

// Const tags a read-only address or pointer.
type Const struct{}

// Mut tags a read-write address or pointer.
type Mut struct{}
