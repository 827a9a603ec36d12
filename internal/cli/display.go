package cli

import (
	"fmt"
	"strings"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// PrintHeader prints a section header
func PrintHeader(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// PrintStep prints a step in a multi-step process
func PrintStep(current, total int, message string) {
	fmt.Printf("\n[%d/%d] %s\n", current, total, message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("\n%s\n", message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("\nError: %s\n", message)
}

// PrintTargetsTable displays resolved GPUs in a table format
func PrintTargetsTable(targets []domain.TargetGPU) {
	PrintHeader(fmt.Sprintf("GPUs to package (%d)", len(targets)))

	if len(targets) == 0 {
		fmt.Println("  (none)")
		return
	}

	fmt.Printf("  %-30s %-15s %-16s %-12s\n", "GPU", "Provider", "Version", "Inf")
	fmt.Printf("  %-30s %-15s %-16s %-12s\n",
		strings.Repeat("-", 30), strings.Repeat("-", 15),
		strings.Repeat("-", 16), strings.Repeat("-", 12))

	for _, t := range targets {
		name := t.Device.FriendlyName
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Printf("  %-30s %-15s %-16s %-12s\n",
			name, t.Driver.Provider, t.Driver.Version, t.Driver.InfName)
	}
}
