package lloyd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lloyd/internal/kmeans"
)

var (
	// ErrInvalidConfiguration is the root of every error detected before a
	// run starts.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = fmt.Errorf("%w: k must be positive", ErrInvalidConfiguration)

	// ErrInvalidMaxIterations is returned when the iteration cap is not positive.
	ErrInvalidMaxIterations = fmt.Errorf("%w: max iterations must be positive", ErrInvalidConfiguration)

	// ErrTooFewPoints is returned when k exceeds the number of points.
	ErrTooFewPoints = fmt.Errorf("%w: k exceeds the number of points", ErrInvalidConfiguration)

	// ErrNilDataset is returned when Run is called without a dataset.
	ErrNilDataset = fmt.Errorf("%w: dataset is nil", ErrInvalidConfiguration)
)

// ErrBackendFailure indicates that the configured backend failed or returned a
// malformed solution. The run produced no result.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrBackendFailure struct {
	Backend string
	K       int
	cause   error
}

func (e *ErrBackendFailure) Error() string {
	return fmt.Sprintf("backend %s failed for k=%d: %v", e.Backend, e.K, e.cause)
}

func (e *ErrBackendFailure) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, kmeans.ErrInvalidK):
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	case errors.Is(err, kmeans.ErrInvalidMaxIterations):
		return fmt.Errorf("%w: %w", ErrInvalidMaxIterations, err)
	case errors.Is(err, kmeans.ErrTooFewPoints):
		return fmt.Errorf("%w: %w", ErrTooFewPoints, err)
	case errors.Is(err, kmeans.ErrInvalidInput):
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return err
}
