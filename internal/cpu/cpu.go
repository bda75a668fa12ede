// Package cpu provides CPU feature detection for stencil kernel selection.
//
// Detection runs once, lazily, and the result is cached. Tests can override
// the detected features with SetForcedFeatures, and the ALGO_STENCIL_NO_SIMD
// environment variable forces the generic kernels at runtime.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// NoSIMDEnvVar names the environment variable that disables SIMD kernels.
const NoSIMDEnvVar = "ALGO_STENCIL_NO_SIMD"

// SIMDLevel identifies the instruction set a kernel requires.
type SIMDLevel int

const (
	// SIMDNone is the pure Go fallback.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline (4 float32 lanes).
	SIMDSSE2

	// SIMDAVX2 is x86-64 AVX2 (8 float32 lanes).
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD (4 float32 lanes).
	SIMDNEON
)

// String returns the lower-case kernel name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes the capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables every SIMD level.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the features of the running CPU, or the forced
// features if SetForcedFeatures was called. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	forcedMu.Lock()
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
		detected.ForceGeneric = noSIMDEnv()
	})
	out := detected
	forcedMu.Unlock()

	return out
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	cp := f
	forced = &cp
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	forced = nil
	detectOnce = sync.Once{}
	detected = Features{}
}

// Supports reports whether features can run a kernel that requires level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// noSIMDEnv treats any non-empty value that does not parse as false as true.
func noSIMDEnv() bool {
	val := os.Getenv(NoSIMDEnvVar)
	if val == "" {
		return false
	}

	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}

	return true
}
