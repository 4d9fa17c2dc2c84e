package bank_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"pagomovil-system/domain/constants"
	entities "pagomovil-system/domain/entities"
	eBankGw "pagomovil-system/domain/entities/bank_gateway"
	"pagomovil-system/utils/configs"
	"pagomovil-system/utils/helpers"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultTimeout = time.Second * 30

type repoImpl struct {
	ProductionUri      string
	QualityUri         string
	APIKey             string
	MerchantPhone      string
	UseQuality         bool
	DefaultNationality string
	Timeout            time.Duration
	Logger             *zap.Logger
}

func NewRepoImpl(conf configs.BDVConfig, logger *zap.Logger) *repoImpl {
	timeout := defaultTimeout
	if conf.TimeoutSeconds > 0 {
		timeout = time.Duration(conf.TimeoutSeconds) * time.Second
	}

	return &repoImpl{
		ProductionUri:      conf.ProductionUri,
		QualityUri:         conf.QualityUri,
		APIKey:             conf.APIKey,
		MerchantPhone:      conf.MerchantPhone,
		UseQuality:         conf.UseQuality,
		DefaultNationality: conf.DefaultNationality,
		Timeout:            timeout,
		Logger:             logger,
	}
}

// VerifyMobilePayment performs exactly one conciliation call against BDV and
// folds every failure mode into the outcome. No retries, no state between
// calls; concurrent invocations are independent.
func (r repoImpl) VerifyMobilePayment(ctx context.Context, claim entities.PaymentClaim, opts entities.VerifyOptions) (outcome entities.VerificationOutcome) {
	merchantPhone := helpers.NormalizePhone(r.MerchantPhone)

	if r.APIKey == "" || !helpers.IsValidPhone(merchantPhone) {
		r.Logger.Error("bdv conciliation misconfigured: missing api key or merchant phone")

		return entities.VerificationOutcome{
			CallSucceeded: false,
			Verified:      false,
			Code:          constants.CodeInternalError,
			Reason:        constants.ReasonMisconfigured,
			Message:       constants.MsgMissingConfig,
		}
	}

	uri := r.endpoint(opts)

	request := eBankGw.ConciliationRequest{
		CedulaPagador:   helpers.NormalizeNationalID(claim.PayerNationalID, r.DefaultNationality),
		TelefonoPagador: helpers.NormalizePhone(claim.PayerPhone),
		TelefonoDestino: merchantPhone,
		Referencia:      helpers.NormalizeReference(claim.Reference),
		FechaPago:       helpers.FormatDateForWire(claim.PaymentDate),
		Importe:         helpers.FormatAmountForWire(claim.Amount),
		BancoOrigen:     claim.OriginBankCode,
		ReqCed:          claim.RequireNationalIdMatch,
	}

	var response eBankGw.ConciliationResponse

	err := r.httpRequest(ctx, struct {
		Uri      string
		Body     eBankGw.ConciliationRequest
		Response *eBankGw.ConciliationResponse
	}{
		Uri:      uri,
		Body:     request,
		Response: &response,
	})

	if err != nil {
		r.Logger.With(zap.Error(err)).With(zapcore.Field{
			Key:    "uri",
			Type:   zapcore.StringType,
			String: uri,
		}).Error("bdv conciliation unreachable")

		return entities.VerificationOutcome{
			CallSucceeded: false,
			Verified:      false,
			Code:          constants.CodeInternalError,
			Reason:        constants.ReasonBankUnreachable,
			Message:       constants.MsgBankUnreachable,
		}
	}

	outcome = entities.VerificationOutcome{
		CallSucceeded: true,
		Code:          int(response.Code),
		RawResponse:   &response,
	}

	if response.Data != nil {
		outcome.Amount = response.Data.Amount
	}

	if response.Code.IsSuccess() {
		outcome.Verified = true
		outcome.Reason = constants.ReasonVerified
		outcome.Message = constants.MsgVerified
		return outcome
	}

	outcome.Reason, outcome.Message = Interpret(int(response.Code), response.Message)

	return outcome
}

// endpoint resolves production vs quality once, before the request is built.
func (r repoImpl) endpoint(opts entities.VerifyOptions) string {
	useQuality := r.UseQuality
	if opts.UseQualityEnvironment != nil {
		useQuality = *opts.UseQualityEnvironment
	}

	if useQuality {
		return r.QualityUri
	}

	return r.ProductionUri
}

func (r repoImpl) httpRequest(ctx context.Context, request struct {
	Uri      string
	Body     eBankGw.ConciliationRequest
	Response *eBankGw.ConciliationResponse
}) (err error) {
	client := new(http.Client)

	client.Timeout = r.Timeout

	jsonrequest, err := json.Marshal(request.Body)
	if err != nil {
		return err
	}

	// the payer phone and cedula are personal data, the audit log gets the
	// masked rendition only
	masked := request.Body
	masked.TelefonoPagador = helpers.MaskPhone(masked.TelefonoPagador)
	masked.TelefonoDestino = helpers.MaskPhone(masked.TelefonoDestino)
	masked.CedulaPagador = helpers.MaskNationalID(masked.CedulaPagador)
	maskedjson, _ := json.Marshal(masked)

	r.Logger.With(zapcore.Field{
		Key:    "request",
		Type:   zapcore.StringType,
		String: string(maskedjson),
	}).Info("bdv_conciliation_request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, request.Uri, bytes.NewReader(jsonrequest))
	if err != nil {
		return err
	}

	req.Header.Add("Content-Type", `application/json`)
	req.Header.Add("Authorization", r.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseByte, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	r.Logger.With(zapcore.Field{
		Key:    "uri",
		Type:   zapcore.StringType,
		String: request.Uri,
	}).With(zapcore.Field{
		Key:    "response",
		Type:   zapcore.StringType,
		String: string(responseByte),
	}).Info("bdv_conciliation_response")

	// a 5xx is an outage, not a verdict, even when the body parses
	if resp.StatusCode >= 500 {
		return fmt.Errorf("bdv conciliation server error: %v", resp.StatusCode)
	}

	err = json.Unmarshal(responseByte, request.Response)
	if err != nil {
		r.Logger.With(zap.Error(err)).Error("can not unmarshal bdv response")
		return err
	}

	return nil
}
