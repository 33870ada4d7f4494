package handler

import (
	"net/http"
	"strconv"

	"github.com/rarango1992/GPAC/internal/app/service"
	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type LookupHandler struct {
	lookupService *service.LookupService
}

func NewLookupHandler(lookupService *service.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

func (h *LookupHandler) RegisterRoutes(r chi.Router) {
	r.Get("/GetStatusByCode/{code}", h.getStatusByCode)
	r.Get("/GetPriorityByCode/{code}", h.getPriorityByCode)
}

func (h *LookupHandler) getStatusByCode(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r, model.StatusMin, model.StatusMax)
	if !ok {
		return
	}

	status, err := h.lookupService.StatusByCode(r.Context(), code)
	if err != nil {
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.EnvelopeCodeFromError(err))
		return
	}
	common.RespondEnvelope(w, http.StatusOK, status, "Status Title.", common.CodeOK)
}

func (h *LookupHandler) getPriorityByCode(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r, model.PriorityMin, model.PriorityMax)
	if !ok {
		return
	}

	priority, err := h.lookupService.PriorityByLevel(r.Context(), code)
	if err != nil {
		common.RespondEnvelope(w, http.StatusOK, err.Error(), "API Error.", common.EnvelopeCodeFromError(err))
		return
	}
	common.RespondEnvelope(w, http.StatusOK, priority, "Priority Title.", common.CodeOK)
}

func parseCode(w http.ResponseWriter, r *http.Request, min, max int) (int, bool) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil || code < min || code > max {
		common.RespondEnvelope(w, http.StatusOK,
			[]FieldDetail{{Field: "code", Message: "failed validation on 'range'"}},
			"API Error.", common.CodeValidation)
		return 0, false
	}
	return code, true
}
