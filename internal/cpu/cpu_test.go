package cpu

import (
	"runtime"
	"testing"
)

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none-always", Features{}, SIMDNone, true},
		{"sse2-missing", Features{}, SIMDSSE2, false},
		{"sse2-present", Features{HasSSE2: true}, SIMDSSE2, true},
		{"avx2-present", Features{HasSSE2: true, HasAVX2: true}, SIMDAVX2, true},
		{"neon-present", Features{HasNEON: true}, SIMDNEON, true},
		{"force-generic-blocks-sse2", Features{HasSSE2: true, ForceGeneric: true}, SIMDSSE2, false},
		{"force-generic-allows-none", Features{HasSSE2: true, ForceGeneric: true}, SIMDNone, true},
		{"unknown-level", Features{HasSSE2: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestForcedFeaturesOverrideDetection(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{ForceGeneric: true, Architecture: "test"})

	got := DetectFeatures()
	if !got.ForceGeneric || got.Architecture != "test" {
		t.Fatalf("forced features not returned: %+v", got)
	}

	ResetDetection()

	got = DetectFeatures()
	if got.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", got.Architecture, runtime.GOARCH)
	}
}

func TestNoSIMDEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run("value="+tt.val, func(t *testing.T) {
			t.Setenv(NoSIMDEnvVar, tt.val)
			if got := noSIMDEnv(); got != tt.want {
				t.Fatalf("noSIMDEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestDetectHonorsEnv(t *testing.T) {
	t.Setenv(NoSIMDEnvVar, "1")
	ResetDetection()
	defer ResetDetection()

	if !DetectFeatures().ForceGeneric {
		t.Fatal("expected ForceGeneric when env override is set")
	}
}

func TestSIMDLevelString(t *testing.T) {
	want := map[SIMDLevel]string{
		SIMDNone:      "generic",
		SIMDSSE2:      "sse2",
		SIMDAVX2:      "avx2",
		SIMDNEON:      "neon",
		SIMDLevel(42): "unknown",
	}
	for level, name := range want {
		if got := level.String(); got != name {
			t.Errorf("%d.String() = %q, want %q", int(level), got, name)
		}
	}
}
