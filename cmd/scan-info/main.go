// Command scan-info prints a CPU feature snapshot. It exists purely as a
// diagnostic companion to the scanners; none of their dispatch logic reads
// these flags.
package main

import (
	"fmt"

	"github.com/go-scantok/scantok/internal/diag"
)

func main() {
	s := diag.Snapshot()
	fmt.Printf("Brand:          %s\n", s.BrandName)
	fmt.Printf("Vendor:         %s\n", s.VendorID)
	fmt.Printf("Physical cores: %d\n", s.PhysicalCores)
	fmt.Printf("Logical cores:  %d\n", s.LogicalCores)
	fmt.Printf("x86-64 level:   %d\n", s.X64Level)
	fmt.Printf("SSE4.2:         %t\n", s.HasSSE42)
	fmt.Printf("AVX2:           %t\n", s.HasAVX2)
	fmt.Printf("AVX-512BW:      %t\n", s.HasAVX512BW)
}
