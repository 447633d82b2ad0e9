// Command libnative is the shared library entry point. Build it with
//
//	go build -buildmode=c-shared -o libnative.so ./cmd/libnative
//
// to get libnative.so and libnative.h exporting sum, greeting and
// release_string.
package main

import "C"

import _ "github.com/qntx/nativelib/internal/boundary"

func main() {}
