//go:build nonvml
// +build nonvml

package nvml

import (
	"fmt"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// Probe stub - used when building without NVIDIA libraries
type Probe struct{}

func NewProbe() *Probe {
	return &Probe{}
}

func (p *Probe) Init() error {
	return fmt.Errorf("NVML not available (built with nonvml tag)")
}

func (p *Probe) Shutdown() error {
	return nil
}

func (p *Probe) SystemDriverVersion() (string, error) {
	return "", fmt.Errorf("NVML not available")
}

// Compile-time interface check
var _ domain.DriverVersionProbe = (*Probe)(nil)
