package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/parkgrid/occupancy/internal/core/domain"
	"github.com/parkgrid/occupancy/internal/core/services"
)

type OccupancyHandler struct {
	svc *services.OccupancyService
}

func NewOccupancyHandler(svc *services.OccupancyService) *OccupancyHandler {
	return &OccupancyHandler{svc: svc}
}

func (h *OccupancyHandler) RegisterEntry(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.CarRef == "" || req.LotID == 0 {
		writeError(w, http.StatusBadRequest, "car_ref and lot_id are required")
		return
	}
	req.ActorID = ClaimsFrom(r.Context()).ActorID

	resp, err := h.svc.RegisterEntry(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *OccupancyHandler) RegisterExit(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	resp, err := h.svc.RegisterExit(r.Context(), services.RegisterExitRequest{
		ActorID: ClaimsFrom(r.Context()).ActorID,
		EntryID: entryID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *OccupancyHandler) ActiveEntry(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["ref"]
	if ref == "" {
		writeError(w, http.StatusBadRequest, "car reference is required")
		return
	}

	resp, err := h.svc.ActiveEntryForCar(r.Context(), ref)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *OccupancyHandler) LotAvailability(w http.ResponseWriter, r *http.Request) {
	lotID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lot id")
		return
	}

	resp, err := h.svc.LotAvailability(r.Context(), lotID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *OccupancyHandler) ResizeLot(w http.ResponseWriter, r *http.Request) {
	lotID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lot id")
		return
	}

	var req services.ResizeLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.TotalSpaces < 0 {
		writeError(w, http.StatusBadRequest, "total_spaces must not be negative")
		return
	}
	req.LotID = lotID
	req.ActorID = ClaimsFrom(r.Context()).ActorID

	resp, err := h.svc.ResizeLot(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeDomainError maps the typed domain errors onto HTTP statuses. Internal
// invariant breaches deliberately stay opaque to the caller.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrLotNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCapacityExhausted),
		errors.Is(err, domain.ErrDuplicateActiveEntry),
		errors.Is(err, domain.ErrAlreadyExited):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
