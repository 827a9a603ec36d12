package target

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

// MockConfirmer implements Confirmer for testing
type MockConfirmer struct {
	confirmFunc func(prompt string) (bool, error)

	// Call tracking
	Prompts []string
}

func (m *MockConfirmer) Confirm(prompt string) (bool, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.confirmFunc != nil {
		return m.confirmFunc(prompt)
	}
	return true, nil
}

func gpu(name string) domain.TargetGPU {
	return domain.TargetGPU{Device: domain.PnPDevice{InstanceID: name, FriendlyName: name}}
}

func TestSelect_EmptySetIsFatal(t *testing.T) {
	_, err := Select(nil, "", &MockConfirmer{})
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestSelect_SingleGPUSkipsGate(t *testing.T) {
	confirmer := &MockConfirmer{}

	selected, err := Select([]domain.TargetGPU{gpu("NVIDIA GeForce RTX 3070")}, "", confirmer)
	require.NoError(t, err)
	assert.Len(t, selected, 1)
	assert.Empty(t, confirmer.Prompts)
}

func TestSelect_MultiGPUGateWarnsAboutUnfilteredSet(t *testing.T) {
	confirmer := &MockConfirmer{}
	targets := []domain.TargetGPU{gpu("NVIDIA GeForce RTX 3070"), gpu("AMD Radeon RX 6800")}

	selected, err := Select(targets, "radeon", confirmer)
	require.NoError(t, err)

	// The warning fires before filtering and mentions the full count.
	require.Len(t, confirmer.Prompts, 1)
	assert.Contains(t, confirmer.Prompts[0], "2 partition-capable GPUs")

	// Filtering happens after the gate.
	require.Len(t, selected, 1)
	assert.Equal(t, "AMD Radeon RX 6800", selected[0].Device.FriendlyName)
}

func TestSelect_DeclinedIsCleanCancellation(t *testing.T) {
	confirmer := &MockConfirmer{confirmFunc: func(string) (bool, error) { return false, nil }}
	targets := []domain.TargetGPU{gpu("a"), gpu("b")}

	_, err := Select(targets, "", confirmer)
	assert.ErrorIs(t, err, ErrDeclined)
}

func TestSelect_ConfirmerFailurePropagates(t *testing.T) {
	confirmer := &MockConfirmer{confirmFunc: func(string) (bool, error) { return false, errors.New("stdin closed") }}
	targets := []domain.TargetGPU{gpu("a"), gpu("b")}

	_, err := Select(targets, "", confirmer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin closed")
}

func TestSelect_FilterIsCaseInsensitive(t *testing.T) {
	targets := []domain.TargetGPU{gpu("NVIDIA GeForce RTX 3070")}

	selected, err := Select(targets, "geforce", &MockConfirmer{})
	require.NoError(t, err)
	assert.Len(t, selected, 1)
}

func TestSelect_FilterWithNoMatchFails(t *testing.T) {
	targets := []domain.TargetGPU{gpu("NVIDIA GeForce RTX 3070")}

	_, err := Select(targets, "radeon", &MockConfirmer{})
	assert.ErrorIs(t, err, ErrNoFilterMatch)
}
