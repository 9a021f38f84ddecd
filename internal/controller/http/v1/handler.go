package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/lksh336/internal/backdoor"
	"github.com/kurochkinivan/lksh336/internal/domain"
)

type Backdoor interface {
	Methods() []string
	Call(name string, args []string) (any, error)
}

type DeviceState interface {
	Snapshot() domain.State
	SetConnected(connected bool)
}

type BackdoorHandler struct {
	backdoor Backdoor
}

func NewBackdoorHandler(backdoor Backdoor) *BackdoorHandler {
	return &BackdoorHandler{
		backdoor: backdoor,
	}
}

type ListMethodsResponse struct {
	Methods []string `json:"methods"`
}

func (h *BackdoorHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ListMethodsResponse{Methods: h.backdoor.Methods()})
}

type CallRequest struct {
	Args []string `json:"args"`
}

type CallResponse struct {
	Result any `json:"result"`
}

func (h *BackdoorHandler) Call(w http.ResponseWriter, r *http.Request) {
	method := chi.URLParam(r, "method")

	var req CallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.backdoor.Call(method, req.Args)
	if err != nil {
		http.Error(w, err.Error(), callStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, CallResponse{Result: result})
}

func callStatus(err error) int {
	var argErr *backdoor.ArgumentError

	switch {
	case errors.Is(err, backdoor.ErrUnknownMethod):
		return http.StatusNotFound
	case errors.As(err, &argErr), errors.Is(err, domain.ErrInvalidChannel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type DeviceHandler struct {
	device DeviceState
}

func NewDeviceHandler(device DeviceState) *DeviceHandler {
	return &DeviceHandler{
		device: device,
	}
}

func (h *DeviceHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.device.Snapshot())
}

type SetConnectedRequest struct {
	Connected *bool `json:"connected"`
}

func (h *DeviceHandler) SetConnected(w http.ResponseWriter, r *http.Request) {
	var req SetConnectedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Connected == nil {
		http.Error(w, `missing "connected"`, http.StatusBadRequest)
		return
	}

	h.device.SetConnected(*req.Connected)
	w.WriteHeader(http.StatusNoContent)
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
