//go:build !windows
// +build !windows

package hyperv

import (
	"fmt"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// Enumerator stub - GPU partitioning is only enumerable on Windows hosts
type Enumerator struct{}

func NewEnumerator() (*Enumerator, error) {
	return nil, fmt.Errorf("hypervisor GPU enumeration requires a Windows host")
}

func (e *Enumerator) ListPartitionableGPUs() ([]domain.PartitionableGPU, error) {
	return nil, fmt.Errorf("hypervisor GPU enumeration not available")
}

// Compile-time interface check
var _ domain.GPUEnumerator = (*Enumerator)(nil)
