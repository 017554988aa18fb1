package usecase

import (
	"context"
	"time"

	userDomain "github.com/tracktainment/duxmanager/internal/digitaluser/domain"
	"github.com/tracktainment/duxmanager/internal/metrics"
)

const metricsDomain = "digital_users"

// digitalUserUseCaseWithMetrics decorates DigitalUserUseCase with metrics instrumentation.
type digitalUserUseCaseWithMetrics struct {
	next    DigitalUserUseCase
	metrics metrics.BusinessMetrics
}

// NewDigitalUserUseCaseWithMetrics wraps a DigitalUserUseCase with metrics recording.
func NewDigitalUserUseCaseWithMetrics(useCase DigitalUserUseCase, m metrics.BusinessMetrics) DigitalUserUseCase {
	return &digitalUserUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *digitalUserUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	d.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Create records metrics for digital user creation.
func (d *digitalUserUseCaseWithMetrics) Create(
	ctx context.Context,
	in userDomain.DigitalUserCreate,
) (*userDomain.DigitalUser, error) {
	start := time.Now()
	user, err := d.next.Create(ctx, in)
	d.record(ctx, "digital_user_create", start, err)
	return user, err
}

// FindByID records metrics for lookups by identifier.
func (d *digitalUserUseCaseWithMetrics) FindByID(ctx context.Context, id string) (*userDomain.DigitalUser, error) {
	start := time.Now()
	user, err := d.next.FindByID(ctx, id)
	d.record(ctx, "digital_user_get", start, err)
	return user, err
}

// FindByCompositeKey records metrics for lookups by identity provider triple.
func (d *digitalUserUseCaseWithMetrics) FindByCompositeKey(
	ctx context.Context,
	key userDomain.IdentityProviderInformation,
) (*userDomain.DigitalUser, error) {
	start := time.Now()
	user, err := d.next.FindByCompositeKey(ctx, key)
	d.record(ctx, "digital_user_find", start, err)
	return user, err
}

// Delete records metrics for digital user deletion.
func (d *digitalUserUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := d.next.Delete(ctx, id)
	d.record(ctx, "digital_user_delete", start, err)
	return err
}
