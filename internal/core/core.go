// Package core holds the pure functions exposed through the C boundary.
package core

// Add returns a + b. Overflow wraps modulo 2^64.
func Add(a, b uint64) uint64 {
	return a + b
}

// HelloWorld returns the fixed greeting text.
func HelloWorld() string {
	return "Hello, world!"
}
