// Package location wraps the platform geolocation provider with a bounded
// timeout and classifies its failures into the distinct user-facing cases.
package location

import (
	"context"
	"errors"
	"time"

	"github.com/paulmach/orb"
)

// Provider is the one-shot platform geolocation capability.
type Provider interface {
	CurrentPosition(ctx context.Context) (orb.Point, error)
}

// Failure classes. Providers should return these directly where they can;
// Classify maps everything else.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("location request timed out")
	ErrUnsupported         = errors.New("geolocation not supported")
)

// Classify maps a provider error to one of the four failure classes.
// Context deadline and cancellation both count as a timeout; anything
// unrecognized is reported as unavailable.
func Classify(err error) error {
	switch {
	case errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrPositionUnavailable),
		errors.Is(err, ErrTimeout),
		errors.Is(err, ErrUnsupported):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrTimeout
	default:
		return ErrPositionUnavailable
	}
}

// UserMessage returns the user-facing message for a classified failure.
func UserMessage(err error) string {
	switch Classify(err) {
	case ErrPermissionDenied:
		return "Location access was denied. Allow location access and try again."
	case ErrTimeout:
		return "Finding your location took too long. Try again."
	case ErrUnsupported:
		return "Your device does not support location services."
	default:
		return "Your location could not be determined."
	}
}

// Service requests the user's position from a provider under a bounded
// timeout. A slow provider is cut off and reported as ErrTimeout; the caller
// leaves the view untouched on any failure.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService creates a location service. A non-positive timeout defaults to
// 10 seconds.
func NewService(provider Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{provider: provider, timeout: timeout}
}

// CurrentPosition returns the user's coordinates or a classified error.
func (s *Service) CurrentPosition(ctx context.Context) (orb.Point, error) {
	if s.provider == nil {
		return orb.Point{}, ErrUnsupported
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pos, err := s.provider.CurrentPosition(ctx)
	if err != nil {
		return orb.Point{}, Classify(err)
	}
	return pos, nil
}
