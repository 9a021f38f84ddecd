// Package device holds the in-memory state of a simulated Lakeshore 336.
//
// Every accessor takes the device lock, so a single Device may be shared by
// any number of protocol connections and the backdoor.
package device

import (
	"sync"

	"github.com/kurochkinivan/lksh336/internal/domain"
)

type Device struct {
	mu          sync.Mutex
	id          string
	connected   bool
	outputs     [domain.NumOutputs]domain.Output
	inputs      [len(domain.InputKeys)]domain.Input
	curveHeader domain.CurveHeader
}

// New returns a connected device with every channel at its power-on defaults.
func New() *Device {
	return &Device{
		connected:   true,
		curveHeader: domain.DefaultCurveHeader(),
	}
}

func (d *Device) ID() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.id
}

func (d *Device) SetID(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.id = id
}

// Connected reports whether the device answers on the wire.
func (d *Device) Connected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.connected
}

func (d *Device) SetConnected(connected bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.connected = connected
}

func (d *Device) Snapshot() domain.State {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := domain.State{
		ID:          d.id,
		Connected:   d.connected,
		Outputs:     make([]domain.Output, len(d.outputs)),
		Inputs:      make(map[string]domain.Input, len(d.inputs)),
		CurveHeader: d.curveHeader,
	}

	copy(state.Outputs, d.outputs[:])
	for i, key := range domain.InputKeys {
		state.Inputs[key] = d.inputs[i]
	}

	return state
}

// CurveHeader returns the header shared by all curves.
func (d *Device) CurveHeader() domain.CurveHeader {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.curveHeader
}

// SetCurveHeader replaces the shared header. The curve number is accepted for
// command compatibility only; all curves share one header.
func (d *Device) SetCurveHeader(_ int, h domain.CurveHeader) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.curveHeader = h
}

// ResetAlarmStatus clears the latched high and low alarm status on every input.
func (d *Device) ResetAlarmStatus() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.inputs {
		d.inputs[i].AlarmStatus = domain.AlarmStatus{}
	}
}

func (d *Device) output(output int, fn func(o *domain.Output)) error {
	idx, err := domain.OutputIndex(output)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	fn(&d.outputs[idx])

	return nil
}

func (d *Device) input(key string, fn func(in *domain.Input)) error {
	idx, err := domain.InputIndex(key)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	fn(&d.inputs[idx])

	return nil
}
