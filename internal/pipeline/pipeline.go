// Package pipeline orchestrates the driver asset resolution and packaging
// run: discovery, correlation, selection, staging, archiving.
package pipeline

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hostgpu/gpup-packager/internal/archive"
	"github.com/hostgpu/gpup-packager/internal/cli"
	"github.com/hostgpu/gpup-packager/internal/correlate"
	"github.com/hostgpu/gpup-packager/internal/destination"
	"github.com/hostgpu/gpup-packager/internal/domain"
	"github.com/hostgpu/gpup-packager/internal/staging"
	"github.com/hostgpu/gpup-packager/internal/target"
)

var ErrNoPartitionableGPUs = errors.New("no partition-capable GPUs found")

// Options are the two user-facing parameters of a run.
type Options struct {
	Destination string // directory or full archive path; empty means cwd
	Filter      string // friendly-name substring; empty means all
}

// Pipeline runs the packaging sequence end to end. One pipeline owns one
// staging tree at a time; there are no retries anywhere, since every external
// failure means a host environment problem the operator must fix.
type Pipeline struct {
	enumerator domain.GPUEnumerator
	catalog    domain.DeviceCatalog
	confirmer  target.Confirmer
	systemRoot string

	stagingParent string           // "" means the OS temp directory
	now           func() time.Time // injectable for tests
	progress      func(format string, args ...any)
}

// New creates a pipeline over the hypervisor and inventory adapters.
// systemRoot is the host system root used to form guest-relative paths.
func New(enumerator domain.GPUEnumerator, catalog domain.DeviceCatalog, confirmer target.Confirmer, systemRoot string) *Pipeline {
	return &Pipeline{
		enumerator: enumerator,
		catalog:    catalog,
		confirmer:  confirmer,
		systemRoot: systemRoot,
		now:        time.Now,
		progress: func(format string, args ...any) {
			fmt.Printf("  -> "+format+"\n", args...)
		},
	}
}

// Run executes one packaging run and returns the archive path. On any
// failure after staging begins, the staging tree is removed before the
// error is returned. Nothing is written to disk before selection completes.
func (p *Pipeline) Run(opts Options) (string, error) {
	cli.PrintStep(1, 5, "Discovering partition-capable GPUs")
	gpus, err := p.enumerator.ListPartitionableGPUs()
	if err != nil {
		return "", fmt.Errorf("enumerate partitionable GPUs: %w", err)
	}
	if len(gpus) == 0 {
		return "", ErrNoPartitionableGPUs
	}
	p.progress("Found %d partition-capable GPU(s)", len(gpus))

	cli.PrintStep(2, 5, "Resolving driver packages from device inventory")
	targets, err := p.resolveAll(gpus)
	if err != nil {
		return "", err
	}

	cli.PrintStep(3, 5, "Selecting GPUs to package")
	selected, err := target.Select(targets, opts.Filter, p.confirmer)
	if err != nil {
		return "", err
	}
	cli.PrintTargetsTable(selected)

	cli.PrintStep(4, 5, "Staging driver files")
	tree, err := staging.NewTree(p.stagingParent)
	if err != nil {
		return "", err
	}
	// The staging tree lives exactly as long as this run, success or not.
	defer func() {
		if rmErr := tree.Remove(); rmErr != nil {
			log.Printf("Warning: %v", rmErr)
		}
	}()

	assembler := staging.NewAssembler(tree, p.systemRoot)
	assembler.Progress = p.progress
	for _, t := range selected {
		if err := assembler.Stage(t); err != nil {
			return "", err
		}
	}

	cli.PrintStep(5, 5, "Writing archive")
	folder, filename, err := destination.Resolve(opts.Destination, p.now())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create destination folder %s: %w", folder, err)
	}
	archivePath := filepath.Join(folder, filename)
	if err := archive.Compress(tree.Root(), archivePath); err != nil {
		return "", err
	}
	p.progress("Archive written to %s", archivePath)

	return archivePath, nil
}

// resolveAll correlates every discovered GPU. The association catalog is
// fetched exactly once here and shared across all GPUs; re-fetching per
// device is the dominant cost of the whole run.
func (p *Pipeline) resolveAll(gpus []domain.PartitionableGPU) ([]domain.TargetGPU, error) {
	devices, err := p.catalog.ListDisplayDevices()
	if err != nil {
		return nil, fmt.Errorf("list display devices: %w", err)
	}
	drivers, err := p.catalog.ListSignedDisplayDrivers()
	if err != nil {
		return nil, fmt.Errorf("list signed display drivers: %w", err)
	}
	associations, err := p.catalog.ListDriverFileAssociations()
	if err != nil {
		return nil, fmt.Errorf("list driver file associations: %w", err)
	}

	resolver := correlate.NewResolver(devices, drivers, associations)
	targets := make([]domain.TargetGPU, 0, len(gpus))
	for _, gpu := range gpus {
		t, err := resolver.Resolve(gpu)
		if err != nil {
			// A partial package is misleading: one unresolvable GPU
			// aborts the whole run.
			return nil, fmt.Errorf("resolve GPU %q: %w", gpu.Name, err)
		}
		p.progress("Resolved %s (driver %s)", t.Device.FriendlyName, t.Driver.Version)
		targets = append(targets, t)
	}
	return targets, nil
}
