// Package boundary exports the library's C ABI.
//
//	uint64_t sum(uint64_t a, uint64_t b);
//	char    *greeting(void);
//	void     release_string(char *s);
//
// sum wraps on overflow. greeting returns a zero-terminated string allocated
// with malloc; the caller owns it and must hand it back to release_string
// exactly once. release_string(NULL) does nothing. Releasing a pointer
// twice, releasing a pointer that greeting did not return, or reading a
// pointer after release is undefined behavior.
//
// The Go functions Sum, Greeting, ReleaseString and GoString call the
// exported symbols, so Go callers go through the same path as C callers.
package boundary

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/qntx/nativelib/internal/core"
	"github.com/qntx/nativelib/internal/cstr"
)

//export sum
func sum(a, b C.uint64_t) C.uint64_t {
	return C.uint64_t(core.Add(uint64(a), uint64(b)))
}

//export greeting
func greeting() *C.char {
	return (*C.char)(handOff(core.HelloWorld()))
}

//export release_string
func release_string(s *C.char) {
	if s == nil {
		return
	}
	cstr.FromRaw(unsafe.Pointer(s)).Free()
}

// handOff allocates text as a boundary string and gives up ownership of it.
// A string that cannot be represented is fatal: a truncated or null result
// would be worse for the caller than aborting.
func handOff(text string) unsafe.Pointer {
	s, err := cstr.New(text)
	if err != nil {
		Logger().Error("boundary string construction failed",
			zap.Int("len", len(text)),
			zap.Error(err))
		panic(err)
	}
	return s.IntoRaw()
}

// Sum calls the exported sum.
func Sum(a, b uint64) uint64 {
	return uint64(sum(C.uint64_t(a), C.uint64_t(b)))
}

// Greeting calls the exported greeting. The result must be passed to
// ReleaseString exactly once.
func Greeting() unsafe.Pointer {
	return unsafe.Pointer(greeting())
}

// ReleaseString calls the exported release_string.
func ReleaseString(p unsafe.Pointer) {
	release_string((*C.char)(p))
}

// GoString copies a string returned by Greeting without releasing it.
func GoString(p unsafe.Pointer) string {
	return cstr.Read(p)
}
