package application

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"pagomovil-system/domain/constants"
	"pagomovil-system/domain/entities"
	"pagomovil-system/utils/convert_model"
	"pagomovil-system/utils/helpers"
)

// PublishOutcome pushes the attempt to the order service (kafka) and to the
// storefront realtime channel (mqtt). Both are best effort, a broker hiccup
// never changes the verification verdict.
func (us *VerificationApplication) PublishOutcome(attempt *entities.VerificationAttempt) {
	payload, err := json.Marshal(convert_model.FromAttemptToEventDTO(attempt))
	if err != nil {
		us.Logger.With(zap.Error(err)).Error("can not marshal verification event")
		return
	}

	if err := us.Events.PublishOutcome(constants.TopicVerification, payload); err != nil {
		us.Logger.With(zap.Error(err)).Error("can not publish verification event")
	}

	if err := us.MQTT.Publish("pagomovil/"+attempt.Reference, string(payload), false, us.Config.MQTTUri.Prefix); err != nil {
		us.Logger.With(zap.Error(err)).Error("can not publish verification mqtt message")
	}
}

// AlertBankUnreachable raises a telegram ops alert once the unreachable
// streak crosses the configured threshold, then on every further multiple.
func (us *VerificationApplication) AlertBankUnreachable(attempt *entities.VerificationAttempt, streak int64) {
	threshold := int64(us.Config.BDV.AlertThreshold)
	if threshold <= 0 || us.Config.Telegram.BotToken == "" {
		return
	}

	if streak%threshold != 0 {
		return
	}

	message := fmt.Sprintf(
		"BDV conciliación inalcanzable (%v llamadas seguidas)\nÚltimo intento: %v\nReferencia: %v\nMonto: Bs. %v\n%v",
		streak,
		attempt.Id,
		attempt.Reference,
		humanize.Commaf(cast.ToFloat64(attempt.Amount)),
		attempt.CreatedAt.In(helpers.LocationVenezuela()).Format("2006-01-02 15:04:05"),
	)

	botToken := us.Config.Telegram.BotToken
	channelId := us.Config.Telegram.AlertChannelId
	alert := us.AlertFn

	us.IPool.Submit(func() {
		alert(botToken, message, channelId)
	})
}
