// Package preflight checks the host environment before a packaging run and
// prints a status summary for the operator.
package preflight

import (
	"fmt"
	"runtime"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// Result contains the results of the preflight check
type Result struct {
	OS              string
	InventoryReady  bool
	InventoryDetail string // error text when the inventory is unreachable
	DisplayDevices  int
	NvidiaDriver    string // host NVIDIA driver version, "" when unavailable
}

// Run probes the device inventory and the optional NVIDIA driver version.
// Preflight never fails the run by itself; an unreachable inventory is
// reported here and becomes fatal once the pipeline queries it.
func Run(catalog domain.DeviceCatalog, probe domain.DriverVersionProbe) *Result {
	result := &Result{OS: runtime.GOOS}

	devices, err := catalog.ListDisplayDevices()
	if err != nil {
		result.InventoryDetail = err.Error()
	} else {
		result.InventoryReady = true
		result.DisplayDevices = len(devices)
	}

	if probe != nil {
		if err := probe.Init(); err == nil {
			if version, err := probe.SystemDriverVersion(); err == nil {
				result.NvidiaDriver = version
			}
			probe.Shutdown()
		}
	}

	return result
}

// PrintStatus prints the preflight check results
func (r *Result) PrintStatus() {
	fmt.Printf("  OS: %s\n", r.OS)
	if r.InventoryReady {
		fmt.Printf("  ✓ device inventory: %d display device(s)\n", r.DisplayDevices)
	} else {
		fmt.Printf("  ✗ device inventory: %s\n", r.InventoryDetail)
	}
	if r.NvidiaDriver != "" {
		fmt.Printf("  ✓ NVIDIA driver: %s\n", r.NvidiaDriver)
	} else {
		fmt.Printf("  - NVIDIA driver: not detected\n")
	}
}
