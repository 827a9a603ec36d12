package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hostgpu/gpup-packager/internal/adapters/hyperv"
	"github.com/hostgpu/gpup-packager/internal/adapters/nvml"
	"github.com/hostgpu/gpup-packager/internal/adapters/wmi"
	"github.com/hostgpu/gpup-packager/internal/cli"
	"github.com/hostgpu/gpup-packager/internal/pipeline"
	"github.com/hostgpu/gpup-packager/internal/preflight"
	"github.com/hostgpu/gpup-packager/internal/target"
)

// defaultSystemRoot returns the host system root directory
func defaultSystemRoot() string {
	if root := os.Getenv("SystemRoot"); root != "" {
		return root
	}
	return `C:\Windows`
}

func main() {
	log.Println("GPU partition driver packager starting...")

	// Command line flags
	dest := flag.String("dest", "", "Destination directory or full archive path (defaults to the working directory)")
	filter := flag.String("filter", "", "Package only GPUs whose friendly name contains this substring")
	yes := flag.Bool("yes", false, "Accept the multi-GPU confirmation prompt without asking")
	systemRoot := flag.String("system-root", defaultSystemRoot(), "Host system root directory")

	flag.Parse()

	// Connect to the device inventory. Unreachable inventory is fatal before
	// any filesystem work happens.
	catalog, err := wmi.NewCatalog()
	if err != nil {
		log.Fatalf("Failed to open device inventory: %v", err)
	}

	enumerator, err := hyperv.NewEnumerator()
	if err != nil {
		log.Fatalf("Failed to probe hypervisor GPU enumeration: %v", err)
	}

	cli.PrintHeader("Preflight")
	preflight.Run(catalog, nvml.NewProbe()).PrintStatus()

	var confirmer target.Confirmer = &cli.StdinConfirmer{In: os.Stdin}
	if *yes {
		confirmer = cli.AutoConfirmer{}
	}

	p := pipeline.New(enumerator, catalog, confirmer, *systemRoot)
	archivePath, err := p.Run(pipeline.Options{Destination: *dest, Filter: *filter})
	if err != nil {
		if errors.Is(err, target.ErrDeclined) {
			// Deliberate cancellation, not a failure: nothing was created.
			cli.PrintSuccess("Aborted by operator; no files were created.")
			return
		}
		cli.PrintError("Packaging failed: " + err.Error())
		os.Exit(1)
	}

	cli.PrintSuccess("Driver package written to " + archivePath)
	cli.PrintSuccess("Extract it into the guest's system root to install the host drivers.")
}
