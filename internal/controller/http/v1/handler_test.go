package v1_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kurochkinivan/lksh336/internal/backdoor"
	v1 "github.com/kurochkinivan/lksh336/internal/controller/http/v1"
	"github.com/kurochkinivan/lksh336/internal/device"
	"github.com/kurochkinivan/lksh336/internal/domain"
	"github.com/kurochkinivan/lksh336/internal/monitor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBackdoor struct {
	mock.Mock
}

func (m *mockBackdoor) Methods() []string {
	return m.Called().Get(0).([]string)
}

func (m *mockBackdoor) Call(name string, args []string) (any, error) {
	ret := m.Called(name, args)
	return ret.Get(0), ret.Error(1)
}

type mockDevice struct {
	mock.Mock
}

func (m *mockDevice) Snapshot() domain.State {
	return m.Called().Get(0).(domain.State)
}

func (m *mockDevice) SetConnected(connected bool) {
	m.Called(connected)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestBackdoor_ListMethods(t *testing.T) {
	t.Parallel()

	bd := &mockBackdoor{}
	bd.On("Methods").Return([]string{"get_id", "set_id"})

	router := v1.NewRouter(bd, &mockDevice{}, prometheus.NewRegistry())
	rec := do(t, router, http.MethodGet, "/api/v1/backdoor", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"methods":["get_id","set_id"]}`, rec.Body.String())
	bd.AssertExpectations(t)
}

func TestBackdoor_Call(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		body       string
		args       []string
		result     any
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "getter",
			method:     "get_output_setpoint",
			body:       `{"args":["1"]}`,
			args:       []string{"1"},
			result:     2.5,
			wantStatus: http.StatusOK,
			wantBody:   `{"result":2.5}`,
		},
		{
			name:       "setter",
			method:     "set_id",
			body:       `{"args":["test"]}`,
			args:       []string{"test"},
			wantStatus: http.StatusOK,
			wantBody:   `{"result":null}`,
		},
		{
			name:       "empty body",
			method:     "reset_input_alarm_status",
			wantStatus: http.StatusOK,
			wantBody:   `{"result":null}`,
		},
		{
			name:       "unknown method",
			method:     "fly",
			body:       `{"args":[]}`,
			args:       []string{},
			err:        fmt.Errorf("%w %q", backdoor.ErrUnknownMethod, "fly"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "argument error",
			method:     "set_output_range",
			body:       `{"args":["1"]}`,
			args:       []string{"1"},
			err:        &backdoor.ArgumentError{Method: "set_output_range", Index: -1, Err: errors.New("expected 2 arguments, got 1")},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid channel",
			method:     "get_output_range",
			body:       `{"args":["7"]}`,
			args:       []string{"7"},
			err:        fmt.Errorf("%w 7", domain.ErrInvalidOutput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "other failure",
			method:     "get_id",
			body:       `{"args":[]}`,
			args:       []string{},
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bd := &mockBackdoor{}
			bd.On("Call", tt.method, tt.args).Return(tt.result, tt.err)

			router := v1.NewRouter(bd, &mockDevice{}, prometheus.NewRegistry())
			rec := do(t, router, http.MethodPost, "/api/v1/backdoor/"+tt.method, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.err != nil {
				assert.Contains(t, rec.Body.String(), tt.err.Error())
			}
			bd.AssertExpectations(t)
		})
	}
}

func TestBackdoor_CallMalformedBody(t *testing.T) {
	t.Parallel()

	bd := &mockBackdoor{}
	router := v1.NewRouter(bd, &mockDevice{}, prometheus.NewRegistry())

	rec := do(t, router, http.MethodPost, "/api/v1/backdoor/set_id", `{"args":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	bd.AssertNotCalled(t, "Call", mock.Anything, mock.Anything)
}

func TestDevice_GetState(t *testing.T) {
	t.Parallel()

	state := domain.State{
		ID:        "test",
		Connected: true,
		Outputs:   make([]domain.Output, domain.NumOutputs),
		Inputs:    map[string]domain.Input{"A": {SensorName: "probe"}},
	}

	dev := &mockDevice{}
	dev.On("Snapshot").Return(state)

	router := v1.NewRouter(&mockBackdoor{}, dev, prometheus.NewRegistry())
	rec := do(t, router, http.MethodGet, "/api/v1/device", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "test", got["id"])
	assert.Equal(t, true, got["connected"])
	assert.Len(t, got["outputs"], domain.NumOutputs)
	dev.AssertExpectations(t)
}

func TestDevice_SetConnected(t *testing.T) {
	t.Parallel()

	dev := &mockDevice{}
	dev.On("SetConnected", false).Once()

	router := v1.NewRouter(&mockBackdoor{}, dev, prometheus.NewRegistry())

	rec := do(t, router, http.MethodPut, "/api/v1/device/connected", `{"connected":false}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/v1/device/connected", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/v1/device/connected", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	dev.AssertExpectations(t)
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := monitor.NewMetrics(reg)
	metrics.CommandHandled("SETP")

	router := v1.NewRouter(&mockBackdoor{}, &mockDevice{}, reg)

	rec := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = do(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lksh336_commands_handled_total{verb="SETP"} 1`)
}

func TestRouter_WithDevice(t *testing.T) {
	t.Parallel()

	dev := device.New()
	router := v1.NewRouter(backdoor.New(dev), dev, prometheus.NewRegistry())

	rec := do(t, router, http.MethodPost, "/api/v1/backdoor/set_output_setpoint", `{"args":["2","7.5"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/backdoor/get_output_setpoint", `{"args":["2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result":7.5}`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/v1/backdoor/get_output_setpoint", `{"args":["5"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/backdoor/get_output_setpoint", `{"args":["x"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/v1/device/connected", `{"connected":false}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, dev.Connected())
}
