package assign_rider_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type assignRiderRequest struct {
	OrderID string `json:"order_id"`
}

type assignRiderResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RiderID   string `json:"rider_id,omitempty"`
	ZoneID    string `json:"zone_id,omitempty"`
	ZoneName  string `json:"zone_name,omitempty"`
	TimeoutAt string `json:"timeout_at,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req assignRiderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "order_id is required", "")
		return
	}

	result, err := h.service.AssignRider(r.Context(), req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			h.writeError(w, http.StatusBadRequest, "order_id is required", "")
		case errors.Is(err, dispatch.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, "Order not found", req.OrderID)
		case errors.Is(err, dispatch.ErrAssignmentConflict):
			h.writeError(w, http.StatusConflict, "Order assignment conflict", req.OrderID)
		default:
			h.log.With(
				logger.NewField("order", req.OrderID),
				logger.NewField("error", err),
			).Error("assign rider")
			h.writeError(w, http.StatusInternalServerError, err.Error(), "")
		}
		return
	}

	response := assignRiderResponse{
		Success: result.Outcome == dispatch.OutcomeAssigned,
		Message: result.Message(),
	}
	if result.Outcome == dispatch.OutcomeAssigned {
		response.RiderID = result.RiderID
		response.ZoneID = result.ZoneID
		response.ZoneName = result.ZoneName
		response.TimeoutAt = result.TimeoutAt.Format(time.RFC3339)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg, details string) {
	h.writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
