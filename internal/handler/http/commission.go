package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limatime/attendance-backend-go/internal/domain/commission"
	"github.com/limatime/attendance-backend-go/internal/handler/http/response"
)

type CommissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	MarkDeparture(w http.ResponseWriter, r *http.Request)
	MarkReturn(w http.ResponseWriter, r *http.Request)
	GetMyCommissions(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type commissionHandlerImpl struct {
	commissionService commission.CommissionService
}

func NewCommissionHandler(commissionService commission.CommissionService) CommissionHandler {
	return &commissionHandlerImpl{
		commissionService: commissionService,
	}
}

// Create implements CommissionHandler.
func (h *commissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req commission.CreateCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateCommission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.commissionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Field commission created successfully", result)
}

// MarkDeparture implements CommissionHandler.
func (h *commissionHandlerImpl) MarkDeparture(w http.ResponseWriter, r *http.Request) {
	result, err := h.commissionService.MarkDeparture(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Departure marked successfully", result)
}

// MarkReturn implements CommissionHandler.
func (h *commissionHandlerImpl) MarkReturn(w http.ResponseWriter, r *http.Request) {
	result, err := h.commissionService.MarkReturn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Return marked successfully", result)
}

// GetMyCommissions implements CommissionHandler.
func (h *commissionHandlerImpl) GetMyCommissions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCommissionFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.commissionService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CommissionHandler.
func (h *commissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCommissionFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.commissionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseCommissionFilter(r *http.Request) (commission.CommissionFilter, error) {
	q := newQueryParams(r)
	filter := commission.CommissionFilter{
		EmployeeCode: q.String("employee_code"),
		StartDate:    q.String("start_date", "start"),
		EndDate:      q.String("end_date", "end"),
		Page:         q.IntOr("page", 0),
		Limit:        q.IntOr("limit", 0),
	}
	return filter, q.Err()
}
