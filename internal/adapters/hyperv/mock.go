package hyperv

import "github.com/hostgpu/gpup-packager/internal/domain"

// MockEnumerator provides fake hypervisor GPU records for testing
type MockEnumerator struct {
	GPUs []domain.PartitionableGPU
	Err  error

	// Call tracking
	ListCalls int
}

func NewMockEnumerator(gpus []domain.PartitionableGPU) *MockEnumerator {
	return &MockEnumerator{GPUs: gpus}
}

func (m *MockEnumerator) ListPartitionableGPUs() ([]domain.PartitionableGPU, error) {
	m.ListCalls++
	return m.GPUs, m.Err
}

// Compile-time interface check
var _ domain.GPUEnumerator = (*MockEnumerator)(nil)
