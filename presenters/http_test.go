package presenters

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pagomovil-system/application"
	"pagomovil-system/domain/constants"
	"pagomovil-system/domain/entities"
	"pagomovil-system/domain/repositories/mocks"
	"pagomovil-system/utils/configs"
	"pagomovil-system/utils/convert_model"
	"pagomovil-system/utils/gen_ids"
	logger2 "pagomovil-system/utils/logger"
)

func newTestHTTP() (*VerificationHTTP, *mocks.BankServiceRepository, *mocks.VerificationRepository) {
	gen_ids.InitGenIDservice()

	logger, _ := logger2.NewLogger("DEV")

	bankService := &mocks.BankServiceRepository{}
	verificationsMock := &mocks.VerificationRepository{}
	mqttMock := &mocks.IMqtt{}
	eventsMock := &mocks.IEvents{}

	verificationsMock.On("Create", mock.Anything, mock.Anything).Return(nil, nil)
	verificationsMock.On("FindByReference", mock.Anything, mock.Anything).Return(nil, nil)
	mqttMock.On("Publish", mock.Anything, mock.Anything, false, mock.Anything).Return(nil)
	eventsMock.On("PublishOutcome", mock.Anything, mock.Anything).Return(nil)

	app := &application.VerificationApplication{
		Config: &configs.Config{
			Prefix: "T",
			BDV:    configs.BDVConfig{DefaultNationality: "V"},
		},
		Logger:                 logger,
		BankServiceRepository:  bankService,
		VerificationRepository: verificationsMock,
		MQTT:                   mqttMock,
		Events:                 eventsMock,
	}

	return NewVerificationHTTP(app), bankService, verificationsMock
}

func TestVerificationHTTP_Verify(t *testing.T) {
	handler, bankService, _ := newTestHTTP()

	bankService.On("VerifyMobilePayment", mock.Anything, mock.Anything, mock.Anything).Return(entities.VerificationOutcome{
		CallSucceeded: true,
		Verified:      true,
		Code:          int(constants.ConciliationApproved),
		Reason:        constants.ReasonVerified,
		Message:       constants.MsgVerified,
		Amount:        "150.00",
	})

	body, _ := json.Marshal(map[string]interface{}{
		"payer_phone":      "0424-555-6677",
		"origin_bank_code": "0134",
		"reference":        "12345678",
		"payment_date":     "2024-03-05",
		"amount":           150,
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/pagomovil/verify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var event convert_model.VerificationEventDTO
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &event))
	assert.True(t, event.Verified)
	assert.Equal(t, "12345678", event.Reference)
	assert.Equal(t, "0424*****77", event.PayerPhone)
}

func TestVerificationHTTP_Verify_InvalidClaim(t *testing.T) {
	handler, bankService, _ := newTestHTTP()

	body, _ := json.Marshal(map[string]interface{}{
		"payer_phone":      "123",
		"origin_bank_code": "0134",
		"reference":        "12345678",
		"payment_date":     "2024-03-05",
		"amount":           150,
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/pagomovil/verify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	bankService.AssertNotCalled(t, "VerifyMobilePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerificationHTTP_Verify_BadJson(t *testing.T) {
	handler, _, _ := newTestHTTP()

	req := httptest.NewRequest(http.MethodPost, "/v1/pagomovil/verify", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerificationHTTP_Verify_MethodNotAllowed(t *testing.T) {
	handler, _, _ := newTestHTTP()

	req := httptest.NewRequest(http.MethodGet, "/v1/pagomovil/verify", nil)
	rec := httptest.NewRecorder()

	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestVerificationHTTP_Attempts(t *testing.T) {
	handler, _, verifications := newTestHTTP()

	req := httptest.NewRequest(http.MethodGet, "/v1/pagomovil/attempts?reference=12345678", nil)
	rec := httptest.NewRecorder()

	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// no rows for the reference still answers an empty list, not null
	assert.Equal(t, "[]\n", rec.Body.String())
	verifications.AssertCalled(t, "FindByReference", mock.Anything, "12345678")
}

func TestVerificationHTTP_Attempts_InvalidReference(t *testing.T) {
	handler, _, verifications := newTestHTTP()

	req := httptest.NewRequest(http.MethodGet, "/v1/pagomovil/attempts?reference=12", nil)
	rec := httptest.NewRecorder()

	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	verifications.AssertNotCalled(t, "FindByReference", mock.Anything, mock.Anything)
}

func TestVerificationHTTP_Banks(t *testing.T) {
	handler, _, _ := newTestHTTP()

	req := httptest.NewRequest(http.MethodGet, "/v1/banks", nil)
	rec := httptest.NewRecorder()

	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var banks []entities.BankInfo
	assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &banks))
	assert.NotEmpty(t, banks)
}

func TestVerificationHTTP_Health(t *testing.T) {
	handler, _, _ := newTestHTTP()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
