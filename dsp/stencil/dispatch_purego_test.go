//go:build !amd64 || purego

package stencil

import "testing"

func TestDispatch_GenericOnly(t *testing.T) {
	if got := Implementation(); got != "generic" {
		t.Fatalf("Implementation() = %q, want generic", got)
	}

	names := Implementations()
	if len(names) != 1 || names[0] != "generic" {
		t.Fatalf("Implementations() = %v, want [generic]", names)
	}

	if _, err := NewCorrelator(Box(), WithImplementation("sse2")); err == nil {
		t.Fatal("expected error selecting sse2 without the amd64 kernels")
	}
}
