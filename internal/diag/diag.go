// Package diag reports informational runtime diagnostics for the cmd/scan-info
// driver. It carries no behavior of its own scanners or splitters depend on:
// the CPU feature flags it reports are metadata only, never a dispatch
// decision, since the Scanner and Splitters stay scalar.
package diag

import "github.com/klauspost/cpuid/v2"

// Stats is a point-in-time snapshot of the host CPU's brand and feature
// flags relevant to byte-oriented scanning (wide SIMD compare/shuffle
// instructions a future vectorized Splitter could target).
type Stats struct {
	BrandName     string
	VendorID      string
	PhysicalCores int
	LogicalCores  int
	X64Level      int
	HasSSE42      bool
	HasAVX2       bool
	HasAVX512BW   bool
}

// Snapshot reads the current CPU feature flags via klauspost/cpuid/v2.
func Snapshot() Stats {
	c := cpuid.CPU
	return Stats{
		BrandName:     c.BrandName,
		VendorID:      c.VendorString,
		PhysicalCores: c.PhysicalCores,
		LogicalCores:  c.LogicalCores,
		X64Level:      c.X64Level(),
		HasSSE42:      c.Supports(cpuid.SSE42),
		HasAVX2:       c.Supports(cpuid.AVX2),
		HasAVX512BW:   c.Supports(cpuid.AVX512BW),
	}
}
