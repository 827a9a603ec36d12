// Package target applies the operator-facing selection rules to the set of
// resolved GPUs: the multi-GPU safety gate and the friendly-name filter.
package target

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hostgpu/gpup-packager/internal/domain"
)

var (
	ErrNoTargets     = errors.New("no partition-capable GPUs resolved")
	ErrNoFilterMatch = errors.New("no GPU friendly name matches the filter")

	// ErrDeclined is a deliberate operator cancellation, not a failure.
	// Callers abort cleanly without creating any files.
	ErrDeclined = errors.New("cancelled by operator")
)

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// multiGPUWarning explains why packaging more than one GPU needs an explicit
// go-ahead: partition assignment inside the guest is not controllable, so
// the guest may end up on any of the packaged adapters.
const multiGPUWarning = "%d partition-capable GPUs were discovered. Assigning a partition " +
	"to a specific GPU is not controllable; all discovered GPUs will be packaged. Continue?"

// Select produces the ordered set of GPUs to package. The multi-GPU gate
// fires on the unfiltered discovered set; the friendly-name filter is
// applied afterwards, so a filter never silences the safety warning.
func Select(targets []domain.TargetGPU, filter string, confirmer Confirmer) ([]domain.TargetGPU, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	if len(targets) > 1 {
		ok, err := confirmer.Confirm(fmt.Sprintf(multiGPUWarning, len(targets)))
		if err != nil {
			return nil, fmt.Errorf("confirmation prompt: %w", err)
		}
		if !ok {
			return nil, ErrDeclined
		}
	}

	if filter == "" {
		return targets, nil
	}

	var selected []domain.TargetGPU
	needle := strings.ToLower(filter)
	for _, t := range targets {
		if strings.Contains(strings.ToLower(t.Device.FriendlyName), needle) {
			selected = append(selected, t)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFilterMatch, filter)
	}
	return selected, nil
}
