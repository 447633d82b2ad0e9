// Package cstr implements zero-terminated strings allocated on the C heap
// and handed across the C boundary.
//
// A String owns its block until IntoRaw gives the pointer away. FromRaw
// takes a pointer back, and Free on the reconstructed String is the only
// place a block is returned to the allocator. Each pointer produced by
// IntoRaw must be passed to FromRaw(...).Free exactly once; the package
// cannot detect a second release or a pointer it did not allocate.
package cstr

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"unsafe"
)

// ErrInteriorNUL reports a zero byte inside the source text.
var ErrInteriorNUL = errors.New("interior NUL byte")

// live counts blocks allocated by New and not yet freed.
var live atomic.Int64

// String is an owned, zero-terminated C string.
type String struct {
	ptr *C.char
}

// New copies s into a fresh C heap block followed by a single zero byte.
// It fails if s contains a zero byte, since the copy would be truncated
// on the other side of the boundary.
func New(s string) (*String, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, fmt.Errorf("cstr: %w at offset %d", ErrInteriorNUL, i)
	}
	p := C.CString(s)
	live.Add(1)
	return &String{ptr: p}, nil
}

// FromRaw takes ownership of p, which must come from IntoRaw.
// A nil p yields a nil *String, on which every method is a no-op.
func FromRaw(p unsafe.Pointer) *String {
	if p == nil {
		return nil
	}
	return &String{ptr: (*C.char)(p)}
}

// IntoRaw releases ownership and returns the underlying pointer.
// s is empty afterwards and Free on it does nothing.
func (s *String) IntoRaw() unsafe.Pointer {
	if s == nil {
		return nil
	}
	p := s.ptr
	s.ptr = nil
	return unsafe.Pointer(p)
}

// Free returns the block to the allocator.
func (s *String) Free() {
	if s == nil || s.ptr == nil {
		return
	}
	C.free(unsafe.Pointer(s.ptr))
	s.ptr = nil
	live.Add(-1)
}

// Len returns the number of bytes before the terminator.
func (s *String) Len() int {
	if s == nil || s.ptr == nil {
		return 0
	}
	return int(C.strlen(s.ptr))
}

// String returns a Go copy of the contents.
func (s *String) String() string {
	if s == nil || s.ptr == nil {
		return ""
	}
	return C.GoString(s.ptr)
}

// Bytes returns a copy of the block including the terminator.
func (s *String) Bytes() []byte {
	if s == nil || s.ptr == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(s.ptr), C.int(s.Len()+1))
}

// Read copies the contents of p without taking ownership.
func Read(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(p))
}

// Live returns the number of blocks allocated and not yet freed.
func Live() int64 {
	return live.Load()
}
