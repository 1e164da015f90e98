package api

import (
	"encoding/json"
	"net/http"

	"github.com/rankworks/criterium/internal/mailer"
	"github.com/rankworks/criterium/internal/tabular"
)

type ValidateHandler struct{}

func NewValidateHandler() *ValidateHandler {
	return &ValidateHandler{}
}

type ValidateRequest struct {
	Email   string `json:"email"`
	Weights string `json:"weights"`
	Impacts string `json:"impacts"`
}

type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// Validate checks form fields ahead of an upload so the client can show
// per-field errors before submitting the file.
// POST /api/v1/validate
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ValidateResponse{
			Valid:  false,
			Errors: map[string]string{"general": "invalid request body"},
		})
		return
	}

	errs := make(map[string]string)

	if req.Email == "" {
		errs["email"] = "Email is required"
	} else if !mailer.ValidAddress(req.Email) {
		errs["email"] = "Invalid email format"
	}

	if req.Weights == "" {
		errs["weights"] = "Weights are required"
	} else if weights, err := tabular.ParseWeights(req.Weights); err != nil {
		errs["weights"] = err.Error()
	} else {
		for _, wt := range weights {
			if wt <= 0 {
				errs["weights"] = "All weights must be positive numbers (> 0)"
				break
			}
		}
	}

	if req.Impacts == "" {
		errs["impacts"] = "Impacts are required"
	} else if _, err := tabular.ParseImpacts(req.Impacts); err != nil {
		errs["impacts"] = err.Error()
	}

	writeJSON(w, http.StatusOK, ValidateResponse{Valid: len(errs) == 0, Errors: errs})
}
