package bank_service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pagomovil-system/domain/constants"
	"pagomovil-system/domain/entities"
	eBankGw "pagomovil-system/domain/entities/bank_gateway"
	"pagomovil-system/utils/configs"
	"pagomovil-system/utils/logger"
)

func testBDVConfig(uri string) configs.BDVConfig {
	return configs.BDVConfig{
		ProductionUri:      uri,
		QualityUri:         uri,
		APIKey:             "test-key",
		MerchantPhone:      "0414-1112233",
		DefaultNationality: "V",
		TimeoutSeconds:     5,
	}
}

func testClaim() entities.PaymentClaim {
	return entities.PaymentClaim{
		PayerPhone:             "0424-555 66 77",
		OriginBankCode:         "0134",
		Reference:              " 12345678 ",
		PaymentDate:            "2024-03-05T23:00:00-04:00",
		Amount:                 150,
		PayerNationalID:        "12345678",
		RequireNationalIdMatch: true,
	}
}

func Test_repoImpl_VerifyMobilePayment_Verified(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	var received eBankGw.ConciliationRequest
	var authorization string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		authorization = req.Header.Get("Authorization")
		if err := json.NewDecoder(req.Body).Decode(&received); err != nil {
			t.Error(err)
		}

		_ = json.NewEncoder(w).Encode(eBankGw.ConciliationResponse{
			Code:    constants.ConciliationApproved,
			Message: "Aprobado",
			Data:    &eBankGw.ConciliationData{Amount: "150.00"},
		})
	}))
	defer server.Close()

	r := NewRepoImpl(testBDVConfig(server.URL), log)

	outcome := r.VerifyMobilePayment(context.TODO(), testClaim(), entities.VerifyOptions{})

	assert.True(t, outcome.CallSucceeded)
	assert.True(t, outcome.Verified)
	assert.Equal(t, int(constants.ConciliationApproved), outcome.Code)
	assert.Equal(t, constants.ReasonVerified, outcome.Reason)
	assert.Equal(t, constants.MsgVerified, outcome.Message)
	assert.Equal(t, "150.00", outcome.Amount)

	// the wire body carries normalized values only
	assert.Equal(t, "test-key", authorization)
	assert.Equal(t, "V12345678", received.CedulaPagador)
	assert.Equal(t, "04245556677", received.TelefonoPagador)
	assert.Equal(t, "04141112233", received.TelefonoDestino)
	assert.Equal(t, "12345678", received.Referencia)
	assert.Equal(t, "2024-03-06", received.FechaPago)
	assert.Equal(t, "150.00", received.Importe)
	assert.Equal(t, "0134", received.BancoOrigen)
	assert.True(t, received.ReqCed)
}

func Test_repoImpl_VerifyMobilePayment_BankVerdicts(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	tests := []struct {
		name          string
		response      eBankGw.ConciliationResponse
		expectReason  constants.MismatchReason
		expectMessage string
	}{
		{
			name: "payment not found",
			response: eBankGw.ConciliationResponse{
				Code:    1010,
				Message: "El registro solicitado no existe",
			},
			expectReason:  constants.ReasonNotFound,
			expectMessage: constants.MsgPaymentNotFound,
		},
		{
			name: "amount mismatch",
			response: eBankGw.ConciliationResponse{
				Code:    1020,
				Message: "El importe no coincide",
			},
			expectReason:  constants.ReasonAmountMismatch,
			expectMessage: constants.MsgAmountMismatch,
		},
		{
			name: "unknown wording falls back to the generic message",
			response: eBankGw.ConciliationResponse{
				Code:    1077,
				Message: "Fallo interno",
			},
			expectReason: constants.ReasonUnclassified,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				_ = json.NewEncoder(w).Encode(tt.response)
			}))
			defer server.Close()

			r := NewRepoImpl(testBDVConfig(server.URL), log)

			outcome := r.VerifyMobilePayment(context.TODO(), testClaim(), entities.VerifyOptions{})

			assert.True(t, outcome.CallSucceeded)
			assert.False(t, outcome.Verified)
			assert.Equal(t, int(tt.response.Code), outcome.Code)
			assert.Equal(t, tt.expectReason, outcome.Reason)
			if tt.expectMessage != "" {
				assert.Equal(t, tt.expectMessage, outcome.Message)
			} else {
				assert.NotEmpty(t, outcome.Message)
			}
		})
	}
}

func Test_repoImpl_VerifyMobilePayment_MissingConfig(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	var calls int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	tests := []struct {
		name string
		conf configs.BDVConfig
	}{
		{
			name: "missing api key",
			conf: configs.BDVConfig{
				ProductionUri: server.URL,
				QualityUri:    server.URL,
				MerchantPhone: "0414-1112233",
			},
		},
		{
			name: "invalid merchant phone",
			conf: configs.BDVConfig{
				ProductionUri: server.URL,
				QualityUri:    server.URL,
				APIKey:        "test-key",
				MerchantPhone: "not-a-phone",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRepoImpl(tt.conf, log)

			outcome := r.VerifyMobilePayment(context.TODO(), testClaim(), entities.VerifyOptions{})

			assert.False(t, outcome.CallSucceeded)
			assert.False(t, outcome.Verified)
			assert.Equal(t, constants.CodeInternalError, outcome.Code)
			assert.Equal(t, constants.ReasonMisconfigured, outcome.Reason)
			assert.Equal(t, constants.MsgMissingConfig, outcome.Message)
		})
	}

	// the short circuit must happen before any network activity
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
}

func Test_repoImpl_VerifyMobilePayment_Unreachable(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	uri := server.URL
	server.Close()

	r := NewRepoImpl(testBDVConfig(uri), log)

	outcome := r.VerifyMobilePayment(context.TODO(), testClaim(), entities.VerifyOptions{})

	assert.False(t, outcome.CallSucceeded)
	assert.False(t, outcome.Verified)
	assert.Equal(t, constants.CodeInternalError, outcome.Code)
	assert.Equal(t, constants.ReasonBankUnreachable, outcome.Reason)
	assert.Equal(t, constants.MsgBankUnreachable, outcome.Message)
}

func Test_repoImpl_VerifyMobilePayment_ServerError(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	// an outage page can still carry a parseable body; the status wins
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(eBankGw.ConciliationResponse{
			Code:    1040,
			Message: "error interno del banco",
		})
	}))
	defer server.Close()

	r := NewRepoImpl(testBDVConfig(server.URL), log)

	outcome := r.VerifyMobilePayment(context.TODO(), testClaim(), entities.VerifyOptions{})

	assert.False(t, outcome.CallSucceeded)
	assert.False(t, outcome.Verified)
	assert.Equal(t, constants.CodeInternalError, outcome.Code)
	assert.Equal(t, constants.ReasonBankUnreachable, outcome.Reason)
	assert.Equal(t, constants.MsgBankUnreachable, outcome.Message)
}

func Test_repoImpl_VerifyMobilePayment_MalformedResponse(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte("<html>mantenimiento</html>"))
	}))
	defer server.Close()

	r := NewRepoImpl(testBDVConfig(server.URL), log)

	outcome := r.VerifyMobilePayment(context.TODO(), testClaim(), entities.VerifyOptions{})

	assert.False(t, outcome.CallSucceeded)
	assert.Equal(t, constants.ReasonBankUnreachable, outcome.Reason)
}

func Test_repoImpl_VerifyMobilePayment_Timeout(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(time.Second * 2)
	}))
	defer server.Close()

	conf := testBDVConfig(server.URL)
	conf.TimeoutSeconds = 1

	r := NewRepoImpl(conf, log)

	outcome := r.VerifyMobilePayment(context.TODO(), testClaim(), entities.VerifyOptions{})

	assert.False(t, outcome.CallSucceeded)
	assert.Equal(t, constants.ReasonBankUnreachable, outcome.Reason)
}

func Test_repoImpl_endpoint(t *testing.T) {
	log, _ := logger.NewLogger("DEV")

	useQuality := true
	useProduction := false

	tests := []struct {
		name       string
		useQuality bool
		opts       entities.VerifyOptions
		expect     string
	}{
		{
			name:   "defaults to production",
			expect: "https://prod",
		},
		{
			name:       "config selects quality",
			useQuality: true,
			expect:     "https://qa",
		},
		{
			name:   "per call override to quality",
			opts:   entities.VerifyOptions{UseQualityEnvironment: &useQuality},
			expect: "https://qa",
		},
		{
			name:       "per call override back to production",
			useQuality: true,
			opts:       entities.VerifyOptions{UseQualityEnvironment: &useProduction},
			expect:     "https://prod",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRepoImpl(configs.BDVConfig{
				ProductionUri: "https://prod",
				QualityUri:    "https://qa",
				APIKey:        "test-key",
				MerchantPhone: "04141112233",
				UseQuality:    tt.useQuality,
			}, log)

			if got := r.endpoint(tt.opts); got != tt.expect {
				t.Errorf("endpoint() = %v, expect %v", got, tt.expect)
			}
		})
	}
}
