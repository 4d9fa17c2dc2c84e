package presenters

import (
	"encoding/json"
	"net/http"

	context2 "golang.org/x/net/context"

	"pagomovil-system/application"
	"pagomovil-system/domain/constants"
	"pagomovil-system/domain/entities"
	"pagomovil-system/utils/convert_model"
)

type VerificationHTTP struct {
	VerificationApplication *application.VerificationApplication
}

func NewVerificationHTTP(app *application.VerificationApplication) *VerificationHTTP {
	return &VerificationHTTP{VerificationApplication: app}
}

func (p *VerificationHTTP) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/pagomovil/verify", p.Verify)
	mux.HandleFunc("/v1/pagomovil/verify-async", p.VerifyAsync)
	mux.HandleFunc("/v1/pagomovil/attempts", p.Attempts)
	mux.HandleFunc("/v1/banks", p.Banks)
	mux.HandleFunc("/health", p.Health)

	return mux
}

type verifyRequest struct {
	entities.PaymentClaim
	UseQualityEnvironment *bool `json:"use_quality_environment,omitempty"`
}

func (p *VerificationHTTP) Verify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
		return
	}

	var request verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json body"})
		return
	}

	var ctx context2.Context = r.Context()

	attempt, err := p.VerificationApplication.VerifyPagoMovil(ctx, request.PaymentClaim,
		entities.VerifyOptions{UseQualityEnvironment: request.UseQualityEnvironment}, constants.ChannelHTTP)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, convert_model.FromAttemptToEventDTO(attempt))
}

// VerifyAsync only enqueues; the outcome arrives on mqtt/kafka.
func (p *VerificationHTTP) VerifyAsync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
		return
	}

	var claim entities.PaymentClaim
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json body"})
		return
	}

	if err := p.VerificationApplication.EnqueueVerification(claim); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// Attempts lists the stored audit rows for ?reference=XXXX.
func (p *VerificationHTTP) Attempts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
		return
	}

	var ctx context2.Context = r.Context()

	attempts, err := p.VerificationApplication.GetAttemptsByReference(ctx, r.URL.Query().Get("reference"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
		return
	}

	if attempts == nil {
		attempts = []*entities.VerificationAttempt{}
	}

	writeJSON(w, http.StatusOK, attempts)
}

func (p *VerificationHTTP) Banks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, p.VerificationApplication.ListBanks())
}

func (p *VerificationHTTP) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
