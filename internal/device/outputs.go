package device

import "github.com/kurochkinivan/lksh336/internal/domain"

func (d *Device) HeaterValue(output int) (v int, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.HeaterValue })
	return v, err
}

func (d *Device) SetHeaterValue(output, v int) error {
	return d.output(output, func(o *domain.Output) { o.HeaterValue = v })
}

func (d *Device) AnalogOutput(output int) (v int, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.AnalogOutput })
	return v, err
}

func (d *Device) SetAnalogOutput(output, v int) error {
	return d.output(output, func(o *domain.Output) { o.AnalogOutput = v })
}

func (d *Device) Setpoint(output int) (v float64, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.Setpoint })
	return v, err
}

func (d *Device) SetSetpoint(output int, v float64) error {
	return d.output(output, func(o *domain.Output) { o.Setpoint = v })
}

func (d *Device) Range(output int) (v int, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.Range })
	return v, err
}

func (d *Device) SetRange(output, v int) error {
	return d.output(output, func(o *domain.Output) { o.Range = v })
}

func (d *Device) Ramp(output int) (v domain.Ramp, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.Ramp })
	return v, err
}

func (d *Device) SetRamp(output int, v domain.Ramp) error {
	return d.output(output, func(o *domain.Output) { o.Ramp = v })
}

func (d *Device) ManualValue(output int) (v float64, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.ManualValue })
	return v, err
}

func (d *Device) SetManualValue(output int, v float64) error {
	return d.output(output, func(o *domain.Output) { o.ManualValue = v })
}

func (d *Device) PID(output int) (v domain.PID, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.PID })
	return v, err
}

func (d *Device) SetPID(output int, v domain.PID) error {
	return d.output(output, func(o *domain.Output) { o.PID = v })
}

func (d *Device) OutputMode(output int) (v domain.OutputMode, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.Mode })
	return v, err
}

func (d *Device) SetOutputMode(output int, v domain.OutputMode) error {
	return d.output(output, func(o *domain.Output) { o.Mode = v })
}

func (d *Device) HeaterStatus(output int) (v int, err error) {
	err = d.output(output, func(o *domain.Output) { v = o.HeaterStatus })
	return v, err
}

func (d *Device) SetHeaterStatus(output, v int) error {
	return d.output(output, func(o *domain.Output) { o.HeaterStatus = v })
}
