package application

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pagomovil-system/domain/constants"
	"pagomovil-system/domain/entities"
)

// RegisterVerifyConsumer hooks the storefront intake queue: checkout drops
// claims there when it does not want to block on the bank. Malformed
// payloads are logged and acked, never redelivered.
func (us *VerificationApplication) RegisterVerifyConsumer() error {
	return us.Queue.WithConsumerQueue(func(msg []byte) error {
		var claim entities.PaymentClaim

		if err := json.Unmarshal(msg, &claim); err != nil {
			us.Logger.With(zapcore.Field{
				Key:    "payload",
				Type:   zapcore.StringType,
				String: string(msg),
			}).Error("malformed claim on verify queue")
			return nil
		}

		_, err := us.VerifyPagoMovil(context.TODO(), claim, entities.VerifyOptions{}, constants.ChannelQueue)
		if err != nil {
			us.Logger.With(zap.Error(err)).Error("queued claim rejected")
		}

		return nil
	}, constants.QueueVerifyRequest)
}

// EnqueueVerification defers a claim to the intake queue. The claim is
// gated here too so the queue only ever carries verifiable input.
func (us *VerificationApplication) EnqueueVerification(claim entities.PaymentClaim) error {
	if err := validateClaim(claim); err != nil {
		return err
	}

	payload, err := json.Marshal(claim)
	if err != nil {
		return err
	}

	return us.Queue.PublishQueue(payload, constants.QueueVerifyRequest)
}
