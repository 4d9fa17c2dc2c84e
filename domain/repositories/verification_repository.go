package repositories

import (
	"context"
	"time"

	"pagomovil-system/domain/entities"
)

// BankServiceRepository is the conciliation client. It never returns an
// error: transport and configuration failures are folded into the outcome.
type BankServiceRepository interface {
	VerifyMobilePayment(ctx context.Context, claim entities.PaymentClaim, opts entities.VerifyOptions) entities.VerificationOutcome
}

type VerificationRepository interface {
	Create(ctx context.Context, attempt *entities.VerificationAttempt) (*entities.VerificationAttempt, error)
	FindByReference(ctx context.Context, reference string) ([]*entities.VerificationAttempt, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type IMqtt interface {
	Publish(topic, message string, retain bool, prefix string) error
}

type IEvents interface {
	EnsureTopic(name string, partitions, replicas int) error
	PublishOutcome(topic string, payload []byte) error
}
