package application

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pagomovil-system/utils/helpers"
)

// JobPurgeExpiredAttempts drops audit rows past the retention window. Runs
// periodically from main when the job flag is on.
func (us *VerificationApplication) JobPurgeExpiredAttempts() {
	if us.Config.RetentionDays <= 0 {
		return
	}

	cutoff := helpers.GetCurrentTime().AddDate(0, 0, -us.Config.RetentionDays)

	deleted, err := us.VerificationRepository.DeleteOlderThan(context.TODO(), cutoff)
	if err != nil {
		us.Logger.With(zap.Error(err)).Error("can not purge verification attempts")
		return
	}

	if deleted > 0 {
		us.Logger.With(zapcore.Field{
			Key:     "deleted",
			Type:    zapcore.Int64Type,
			Integer: deleted,
		}).Info("purged expired verification attempts")
	}
}
