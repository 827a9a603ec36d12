//go:build windows
// +build windows

// Package hyperv enumerates partition-capable GPUs through the hypervisor's
// virtualization inventory.
package hyperv

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// The partitionable-GPU enumeration entry point moved namespaces across host
// versions. The enumerator probes the current one at construction and falls
// back to the legacy one, so the pipeline never branches on host version.
const (
	namespaceCurrent = `root\virtualization\v2`
	namespaceLegacy  = `root\virtualization`

	gpuQuery = "SELECT Name FROM Msvm_PartitionableGpu"
)

type msvmPartitionableGpu struct {
	Name string
}

// Enumerator lists partition-capable GPUs from one probed namespace.
type Enumerator struct {
	namespace string
}

// NewEnumerator probes the hypervisor enumeration entry points, newest
// first, and binds to the first one that answers.
func NewEnumerator() (*Enumerator, error) {
	for _, ns := range []string{namespaceCurrent, namespaceLegacy} {
		var rows []msvmPartitionableGpu
		if err := wmi.QueryNamespace(gpuQuery, &rows, ns); err == nil {
			return &Enumerator{namespace: ns}, nil
		}
	}
	return nil, fmt.Errorf("hypervisor GPU enumeration unavailable: no usable virtualization namespace")
}

// ListPartitionableGPUs returns the partition-capable adapters, empty when
// the host has none.
func (e *Enumerator) ListPartitionableGPUs() ([]domain.PartitionableGPU, error) {
	var rows []msvmPartitionableGpu
	if err := wmi.QueryNamespace(gpuQuery, &rows, e.namespace); err != nil {
		return nil, fmt.Errorf("query partitionable GPUs: %w", err)
	}

	gpus := make([]domain.PartitionableGPU, 0, len(rows))
	for _, r := range rows {
		gpus = append(gpus, domain.PartitionableGPU{Name: r.Name})
	}
	return gpus, nil
}

// Compile-time interface check
var _ domain.GPUEnumerator = (*Enumerator)(nil)
