package stencil

import (
	"fmt"
	"sync"

	archregistry "github.com/cwbudde/algo-stencil/dsp/stencil/internal/arch/registry"
	"github.com/cwbudde/algo-stencil/internal/cpu"
)

var (
	defaultEntry    *archregistry.OpEntry
	defaultInitOnce sync.Once
)

func defaultKernel() *archregistry.OpEntry {
	defaultInitOnce.Do(initDefaultKernel)
	return defaultEntry
}

func initDefaultKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("stencil: no kernel registered (missing generic fallback?)")
	}

	if entry.CorrelateRow == nil || entry.CopyFloats == nil {
		panic("stencil: selected kernel " + entry.Name + " is incomplete")
	}

	defaultEntry = entry
}

func namedKernel(name string) (*archregistry.OpEntry, error) {
	entry := archregistry.Global.LookupByName(name, cpu.DetectFeatures())
	if entry == nil || entry.CorrelateRow == nil || entry.CopyFloats == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImplementation, name)
	}

	return entry, nil
}

// Implementation returns the name of the kernel selected for this CPU.
func Implementation() string {
	return defaultKernel().Name
}

// Implementations lists the kernels usable on this CPU, preferred first.
func Implementations() []string {
	features := cpu.DetectFeatures()

	var names []string
	for _, e := range archregistry.Global.ListEntries() {
		if cpu.Supports(features, e.SIMDLevel) {
			names = append(names, e.Name)
		}
	}

	return names
}
