package protocol

import (
	"github.com/kurochkinivan/lksh336/internal/device"
	"github.com/kurochkinivan/lksh336/internal/domain"
)

const identityPrefix = "LSCI,"

// command is one entry of the static command table. The verb is the line up to
// the first space, so "SETP?" and "SETP" are distinct entries.
type command struct {
	verb  string
	args  []argKind
	query bool
	run   func(d *device.Device, a []arg) (string, error)
}

func kinds(k ...argKind) []argKind {
	return k
}

func commandTable() []command {
	return []command{
		{verb: "*IDN?", query: true, run: func(d *device.Device, _ []arg) (string, error) {
			return identityPrefix + d.ID(), nil
		}},

		// Output queries.
		{verb: "HTR?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.HeaterValue(a[0].i)
			return formatInt(v), err
		}},
		{verb: "AOUT?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.AnalogOutput(a[0].i)
			return formatInt(v), err
		}},
		{verb: "SETP?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.Setpoint(a[0].i)
			return formatFloat(v), err
		}},
		{verb: "RANGE?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.Range(a[0].i)
			return formatInt(v), err
		}},
		{verb: "RAMP?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.Ramp(a[0].i)
			return formatRamp(v), err
		}},
		{verb: "MOUT?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.ManualValue(a[0].i)
			return formatFloat(v), err
		}},
		{verb: "PID?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.PID(a[0].i)
			return formatPID(v), err
		}},
		{verb: "OUTMODE?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.OutputMode(a[0].i)
			return formatOutputMode(v), err
		}},
		{verb: "HTRST?", args: kinds(argInt), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.HeaterStatus(a[0].i)
			return formatInt(v), err
		}},

		// Input queries.
		{verb: "KRDG?", args: kinds(argKey), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.KelvinTemperature(a[0].s)
			return v.String(), err
		}},
		{verb: "SRDG?", args: kinds(argKey), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.VoltageInput(a[0].s)
			return v.String(), err
		}},
		{verb: "INNAME?", args: kinds(argKey), query: true, run: func(d *device.Device, a []arg) (string, error) {
			return d.SensorName(a[0].s)
		}},
		{verb: "ALARMST?", args: kinds(argKey), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.AlarmStatus(a[0].s)
			return formatAlarmStatus(v), err
		}},
		{verb: "ALARM?", args: kinds(argKey), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.Alarm(a[0].s)
			return formatAlarm(v), err
		}},
		{verb: "RDGST?", args: kinds(argKey), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.ReadingStatus(a[0].s)
			return formatInt(v), err
		}},
		{verb: "INCRV?", args: kinds(argKey), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.CurveNumber(a[0].s)
			return formatInt(v), err
		}},
		{verb: "INTYPE?", args: kinds(argKey), query: true, run: func(d *device.Device, a []arg) (string, error) {
			v, err := d.InputType(a[0].s)
			return formatInputType(v), err
		}},
		{verb: "CRVHDR?", args: kinds(argInt), query: true, run: func(d *device.Device, _ []arg) (string, error) {
			return formatCurveHeader(d.CurveHeader()), nil
		}},

		// Output settings.
		{verb: "SETP", args: kinds(argInt, argFloat), run: func(d *device.Device, a []arg) (string, error) {
			return "", d.SetSetpoint(a[0].i, a[1].f)
		}},
		{verb: "RANGE", args: kinds(argInt, argInt), run: func(d *device.Device, a []arg) (string, error) {
			return "", d.SetRange(a[0].i, a[1].i)
		}},
		{verb: "RAMP", args: kinds(argInt, argInt, argFloat), run: func(d *device.Device, a []arg) (string, error) {
			return "", d.SetRamp(a[0].i, domain.Ramp{Status: a[1].i, Rate: a[2].f})
		}},
		{verb: "MOUT", args: kinds(argInt, argFloat), run: func(d *device.Device, a []arg) (string, error) {
			return "", d.SetManualValue(a[0].i, a[1].f)
		}},
		{verb: "PID", args: kinds(argInt, argFloat, argFloat, argFloat), run: func(d *device.Device, a []arg) (string, error) {
			return "", d.SetPID(a[0].i, domain.PID{
				P: domain.Real(a[1].f),
				I: domain.Real(a[2].f),
				D: domain.Real(a[3].f),
			})
		}},
		{verb: "OUTMODE", args: kinds(argInt, argInt, argInt, argInt), run: func(d *device.Device, a []arg) (string, error) {
			return "", d.SetOutputMode(a[0].i, domain.OutputMode{Mode: a[1].i, ControlInput: a[2].i, Powerup: a[3].i})
		}},

		// Input settings.
		{verb: "INNAME", args: kinds(argKey, argQuoted), run: func(d *device.Device, a []arg) (string, error) {
			return "", d.SetSensorName(a[0].s, a[1].s)
		}},
		{
			verb: "ALARM",
			args: kinds(argKey, argInt, argNumeric, argNumeric, argNumeric, argInt, argInt, argInt),
			run: func(d *device.Device, a []arg) (string, error) {
				return "", d.SetAlarm(a[0].s, domain.Alarm{
					Enabled:      a[1].i,
					HighSetpoint: a[2].n,
					LowSetpoint:  a[3].n,
					Deadband:     a[4].n,
					Latching:     a[5].i,
					Audible:      a[6].i,
					Visible:      a[7].i,
				})
			},
		},
		{verb: "ALMRST", run: func(d *device.Device, _ []arg) (string, error) {
			d.ResetAlarmStatus()
			return "", nil
		}},
		{verb: "INCRV", args: kinds(argKey, argInt), run: func(d *device.Device, a []arg) (string, error) {
			return "", d.SetCurveNumber(a[0].s, a[1].i)
		}},
		{
			verb: "INTYPE",
			args: kinds(argKey, argInt, argInt, argInt, argInt, argInt),
			run: func(d *device.Device, a []arg) (string, error) {
				return "", d.SetInputType(a[0].s, domain.InputType{
					SensorType:       a[1].i,
					AutoRangeSetting: a[2].i,
					Range:            a[3].i,
					Compensation:     a[4].i,
					Units:            a[5].i,
				})
			},
		},
		{
			verb: "CRVHDR",
			args: kinds(argInt, argString, argString, argInt, argFloat, argInt),
			run: func(d *device.Device, a []arg) (string, error) {
				d.SetCurveHeader(a[0].i, domain.CurveHeader{
					Name:                   a[1].s,
					SerialNumber:           a[2].s,
					DataFormat:             a[3].i,
					TemperatureLimit:       a[4].f,
					TemperatureCoefficient: a[5].i,
				})
				return "", nil
			},
		},
	}
}
