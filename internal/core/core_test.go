package core

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want uint64
	}{
		{"small", 2, 2, 4},
		{"zero", 0, 0, 0},
		{"demo", 42, 58, 100},
		{"wrap", math.MaxUint64, 1, 0},
		{"wrap both", math.MaxUint64, math.MaxUint64, math.MaxUint64 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Add(tt.a, tt.b); got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHelloWorld(t *testing.T) {
	if got := HelloWorld(); got != "Hello, world!" {
		t.Errorf("HelloWorld() = %q, want %q", got, "Hello, world!")
	}
}
