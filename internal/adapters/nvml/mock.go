package nvml

import "github.com/hostgpu/gpup-packager/internal/domain"

// MockProbe provides a fake driver version for testing
type MockProbe struct {
	Version string
	InitErr error
}

func NewMockProbe(version string) *MockProbe {
	return &MockProbe{Version: version}
}

func (p *MockProbe) Init() error {
	return p.InitErr
}

func (p *MockProbe) Shutdown() error {
	return nil
}

func (p *MockProbe) SystemDriverVersion() (string, error) {
	return p.Version, nil
}

// Compile-time interface check
var _ domain.DriverVersionProbe = (*MockProbe)(nil)
