package wmi

import "github.com/hostgpu/gpup-packager/internal/domain"

// MockCatalog provides a fake device/driver inventory for testing
type MockCatalog struct {
	Devices      []domain.PnPDevice
	Drivers      []domain.SignedDriver
	Associations []domain.DriverFileAssociation

	DevicesErr      error
	DriversErr      error
	AssociationsErr error

	// Call tracking
	DeviceCalls      int
	DriverCalls      int
	AssociationCalls int
}

func NewMockCatalog(devices []domain.PnPDevice, drivers []domain.SignedDriver, associations []domain.DriverFileAssociation) *MockCatalog {
	return &MockCatalog{Devices: devices, Drivers: drivers, Associations: associations}
}

func (m *MockCatalog) ListDisplayDevices() ([]domain.PnPDevice, error) {
	m.DeviceCalls++
	return m.Devices, m.DevicesErr
}

func (m *MockCatalog) ListSignedDisplayDrivers() ([]domain.SignedDriver, error) {
	m.DriverCalls++
	return m.Drivers, m.DriversErr
}

func (m *MockCatalog) ListDriverFileAssociations() ([]domain.DriverFileAssociation, error) {
	m.AssociationCalls++
	return m.Associations, m.AssociationsErr
}

// Compile-time interface check
var _ domain.DeviceCatalog = (*MockCatalog)(nil)
