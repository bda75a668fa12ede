package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{in: "1024x768", w: 1024, h: 768},
		{in: " 3X3 ", w: 3, h: 3},
		{in: "17x1", w: 17, h: 1},
		{in: "1024", wantErr: true},
		{in: "0x5", wantErr: true},
		{in: "-3x5", wantErr: true},
		{in: "ax5", wantErr: true},
		{in: "5xb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %dx%d", w, h)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w != tt.w || h != tt.h {
				t.Fatalf("got %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestPrintRunsCheck(t *testing.T) {
	cfg := runConfig{
		width:   19,
		height:  5,
		workers: 2,
		runs:    1,
		impls:   []string{"generic"},
		check:   true,
	}

	var buf bytes.Buffer
	if err := printRuns(&buf, []string{"sobel-x", "gaussian"}, cfg); err != nil {
		t.Fatalf("printRuns: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"MaxDiff naive", "sobel-x", "gaussian", "19x5", "generic"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestPrintRunsUnknownImplementation(t *testing.T) {
	cfg := runConfig{width: 4, height: 4, workers: 1, runs: 1, impls: []string{"mmx"}}

	var buf bytes.Buffer
	if err := printRuns(&buf, []string{"box"}, cfg); err == nil {
		t.Fatal("expected error for unknown implementation")
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)

	out := buf.String()
	for _, want := range []string{"Kernels:", "laplacian", "Implementations:", "generic", "(default)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}
