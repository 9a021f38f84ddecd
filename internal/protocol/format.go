package protocol

import (
	"strconv"
	"strings"

	"github.com/kurochkinivan/lksh336/internal/domain"
)

const fieldSeparator = ","

func join(fields ...string) string {
	return strings.Join(fields, fieldSeparator)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	return domain.FormatFloat(v)
}

func formatRamp(r domain.Ramp) string {
	return join(formatInt(r.Status), formatFloat(r.Rate))
}

func formatPID(p domain.PID) string {
	return join(p.P.String(), p.I.String(), p.D.String())
}

func formatOutputMode(m domain.OutputMode) string {
	return join(formatInt(m.Mode), formatInt(m.ControlInput), formatInt(m.Powerup))
}

func formatAlarmStatus(s domain.AlarmStatus) string {
	return join(formatInt(s.High), formatInt(s.Low))
}

func formatAlarm(a domain.Alarm) string {
	return join(
		formatInt(a.Enabled),
		a.HighSetpoint.String(),
		a.LowSetpoint.String(),
		a.Deadband.String(),
		formatInt(a.Latching),
		formatInt(a.Audible),
		formatInt(a.Visible),
	)
}

func formatCurveHeader(h domain.CurveHeader) string {
	return join(
		h.Name,
		h.SerialNumber,
		formatInt(h.DataFormat),
		formatFloat(h.TemperatureLimit),
		formatInt(h.TemperatureCoefficient),
	)
}

func formatInputType(t domain.InputType) string {
	return join(
		formatInt(t.SensorType),
		formatInt(t.AutoRangeSetting),
		formatInt(t.Range),
		formatInt(t.Compensation),
		formatInt(t.Units),
	)
}
