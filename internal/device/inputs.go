package device

import "github.com/kurochkinivan/lksh336/internal/domain"

func (d *Device) KelvinTemperature(key string) (v domain.Numeric, err error) {
	err = d.input(key, func(in *domain.Input) { v = in.KelvinTemperature })
	return v, err
}

func (d *Device) SetKelvinTemperature(key string, v domain.Numeric) error {
	return d.input(key, func(in *domain.Input) { in.KelvinTemperature = v })
}

func (d *Device) VoltageInput(key string) (v domain.Numeric, err error) {
	err = d.input(key, func(in *domain.Input) { v = in.VoltageInput })
	return v, err
}

func (d *Device) SetVoltageInput(key string, v domain.Numeric) error {
	return d.input(key, func(in *domain.Input) { in.VoltageInput = v })
}

func (d *Device) SensorName(key string) (v string, err error) {
	err = d.input(key, func(in *domain.Input) { v = in.SensorName })
	return v, err
}

func (d *Device) SetSensorName(key, v string) error {
	return d.input(key, func(in *domain.Input) { in.SensorName = v })
}

func (d *Device) AlarmStatus(key string) (v domain.AlarmStatus, err error) {
	err = d.input(key, func(in *domain.Input) { v = in.AlarmStatus })
	return v, err
}

func (d *Device) SetAlarmStatus(key string, v domain.AlarmStatus) error {
	return d.input(key, func(in *domain.Input) { in.AlarmStatus = v })
}

func (d *Device) Alarm(key string) (v domain.Alarm, err error) {
	err = d.input(key, func(in *domain.Input) { v = in.Alarm })
	return v, err
}

func (d *Device) SetAlarm(key string, v domain.Alarm) error {
	return d.input(key, func(in *domain.Input) { in.Alarm = v })
}

func (d *Device) ReadingStatus(key string) (v int, err error) {
	err = d.input(key, func(in *domain.Input) { v = in.ReadingStatus })
	return v, err
}

func (d *Device) SetReadingStatus(key string, v int) error {
	return d.input(key, func(in *domain.Input) { in.ReadingStatus = v })
}

func (d *Device) CurveNumber(key string) (v int, err error) {
	err = d.input(key, func(in *domain.Input) { v = in.CurveNumber })
	return v, err
}

func (d *Device) SetCurveNumber(key string, v int) error {
	return d.input(key, func(in *domain.Input) { in.CurveNumber = v })
}

func (d *Device) InputType(key string) (v domain.InputType, err error) {
	err = d.input(key, func(in *domain.Input) { v = in.InputType })
	return v, err
}

func (d *Device) SetInputType(key string, v domain.InputType) error {
	return d.input(key, func(in *domain.Input) { in.InputType = v })
}
