package backdoor

import (
	"github.com/kurochkinivan/lksh336/internal/device"
	"github.com/kurochkinivan/lksh336/internal/domain"
)

func methods() map[string]method {
	return map[string]method{
		"get_id": {call: func(d *device.Device, _ []value) (any, error) {
			return d.ID(), nil
		}},
		"set_id": {args: []kind{kindString}, call: func(d *device.Device, v []value) (any, error) {
			d.SetID(v[0].s)
			return nil, nil
		}},
		"get_connected": {call: func(d *device.Device, _ []value) (any, error) {
			return d.Connected(), nil
		}},
		"set_connected": {args: []kind{kindBool}, call: func(d *device.Device, v []value) (any, error) {
			d.SetConnected(v[0].b)
			return nil, nil
		}},

		"get_output_heater_value":  outputGetter((*device.Device).HeaterValue),
		"get_output_analog_output": outputGetter((*device.Device).AnalogOutput),
		"get_output_setpoint":      outputGetter((*device.Device).Setpoint),
		"get_output_range":         outputGetter((*device.Device).Range),
		"get_output_ramp":          outputGetter((*device.Device).Ramp),
		"get_output_manual_value":  outputGetter((*device.Device).ManualValue),
		"get_pid":                  outputGetter((*device.Device).PID),
		"get_output_mode":          outputGetter((*device.Device).OutputMode),
		"get_output_heater_status": outputGetter((*device.Device).HeaterStatus),

		"set_output_heater_value": {args: []kind{kindInt, kindInt}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetHeaterValue(v[0].i, v[1].i)
		}},
		"set_output_analog_output": {args: []kind{kindInt, kindInt}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetAnalogOutput(v[0].i, v[1].i)
		}},
		"set_output_setpoint": {args: []kind{kindInt, kindFloat}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetSetpoint(v[0].i, v[1].f)
		}},
		"set_output_range": {args: []kind{kindInt, kindInt}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetRange(v[0].i, v[1].i)
		}},
		"set_output_ramp": {args: []kind{kindInt, kindInt, kindFloat}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetRamp(v[0].i, domain.Ramp{Status: v[1].i, Rate: v[2].f})
		}},
		"set_output_manual_value": {args: []kind{kindInt, kindFloat}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetManualValue(v[0].i, v[1].f)
		}},
		"set_pid": {args: []kind{kindInt, kindNumeric, kindNumeric, kindNumeric}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetPID(v[0].i, domain.PID{P: v[1].n, I: v[2].n, D: v[3].n})
		}},
		"set_output_mode": {args: []kind{kindInt, kindInt, kindInt, kindInt}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetOutputMode(v[0].i, domain.OutputMode{Mode: v[1].i, ControlInput: v[2].i, Powerup: v[3].i})
		}},
		"set_output_heater_status": {args: []kind{kindInt, kindInt}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetHeaterStatus(v[0].i, v[1].i)
		}},

		"get_input_kelvin_temperature": inputGetter((*device.Device).KelvinTemperature),
		"get_input_voltage_input":      inputGetter((*device.Device).VoltageInput),
		"get_input_sensor_name":        inputGetter((*device.Device).SensorName),
		"get_input_alarm_status":       inputGetter((*device.Device).AlarmStatus),
		"get_input_alarm":              inputGetter((*device.Device).Alarm),
		"get_input_reading_status":     inputGetter((*device.Device).ReadingStatus),
		"get_input_curve_number":       inputGetter((*device.Device).CurveNumber),
		"get_input_type":               inputGetter((*device.Device).InputType),

		"set_input_kelvin_temperature": {args: []kind{kindString, kindNumeric}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetKelvinTemperature(v[0].s, v[1].n)
		}},
		"set_input_voltage_input": {args: []kind{kindString, kindNumeric}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetVoltageInput(v[0].s, v[1].n)
		}},
		"set_input_sensor_name": {args: []kind{kindString, kindString}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetSensorName(v[0].s, v[1].s)
		}},
		"set_input_alarm_status": {args: []kind{kindString, kindInt, kindInt}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetAlarmStatus(v[0].s, domain.AlarmStatus{High: v[1].i, Low: v[2].i})
		}},
		"set_input_alarm": {
			args: []kind{kindString, kindInt, kindNumeric, kindNumeric, kindNumeric, kindInt, kindInt, kindInt},
			call: func(d *device.Device, v []value) (any, error) {
				return nil, d.SetAlarm(v[0].s, domain.Alarm{
					Enabled:      v[1].i,
					HighSetpoint: v[2].n,
					LowSetpoint:  v[3].n,
					Deadband:     v[4].n,
					Latching:     v[5].i,
					Audible:      v[6].i,
					Visible:      v[7].i,
				})
			},
		},
		"set_input_reading_status": {args: []kind{kindString, kindInt}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetReadingStatus(v[0].s, v[1].i)
		}},
		"set_input_curve_number": {args: []kind{kindString, kindInt}, call: func(d *device.Device, v []value) (any, error) {
			return nil, d.SetCurveNumber(v[0].s, v[1].i)
		}},
		"set_input_type": {
			args: []kind{kindString, kindInt, kindInt, kindInt, kindInt, kindInt},
			call: func(d *device.Device, v []value) (any, error) {
				return nil, d.SetInputType(v[0].s, domain.InputType{
					SensorType:       v[1].i,
					AutoRangeSetting: v[2].i,
					Range:            v[3].i,
					Compensation:     v[4].i,
					Units:            v[5].i,
				})
			},
		},

		"get_input_curve_header": {call: func(d *device.Device, _ []value) (any, error) {
			return d.CurveHeader(), nil
		}},
		"set_input_curve_header": {
			args: []kind{kindInt, kindString, kindString, kindInt, kindFloat, kindInt},
			call: func(d *device.Device, v []value) (any, error) {
				d.SetCurveHeader(v[0].i, domain.CurveHeader{
					Name:                   v[1].s,
					SerialNumber:           v[2].s,
					DataFormat:             v[3].i,
					TemperatureLimit:       v[4].f,
					TemperatureCoefficient: v[5].i,
				})
				return nil, nil
			},
		},
		"reset_input_alarm_status": {call: func(d *device.Device, _ []value) (any, error) {
			d.ResetAlarmStatus()
			return nil, nil
		}},
	}
}

func outputGetter[T any](get func(d *device.Device, output int) (T, error)) method {
	return method{
		args: []kind{kindInt},
		call: func(d *device.Device, v []value) (any, error) {
			res, err := get(d, v[0].i)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
	}
}

func inputGetter[T any](get func(d *device.Device, key string) (T, error)) method {
	return method{
		args: []kind{kindString},
		call: func(d *device.Device, v []value) (any, error) {
			res, err := get(d, v[0].s)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
	}
}
