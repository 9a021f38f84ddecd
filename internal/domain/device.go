package domain

import "strings"

// NumOutputs is the number of heater control loops. Outputs are addressed 1..NumOutputs.
const NumOutputs = 4

// InputKeys lists the sensor inputs in storage order.
var InputKeys = [...]string{"A", "B", "C", "D"}

const (
	curveNameWidth   = 15
	curveSerialWidth = 10
	curvePadding     = "#"
)

type Ramp struct {
	Status int     `json:"status"`
	Rate   float64 `json:"rate"`
}

type PID struct {
	P Numeric `json:"p"`
	I Numeric `json:"i"`
	D Numeric `json:"d"`
}

type OutputMode struct {
	Mode         int `json:"mode"`
	ControlInput int `json:"control_input"`
	Powerup      int `json:"powerup"`
}

// Output is the state of one heater control loop.
type Output struct {
	HeaterValue  int        `json:"heater_value"`
	AnalogOutput int        `json:"analog_output"`
	Setpoint     float64    `json:"setpoint"`
	Range        int        `json:"range"`
	Ramp         Ramp       `json:"ramp"`
	ManualValue  float64    `json:"manual_value"`
	PID          PID        `json:"pid"`
	Mode         OutputMode `json:"mode"`
	HeaterStatus int        `json:"heater_status"`
}

type AlarmStatus struct {
	High int `json:"high"`
	Low  int `json:"low"`
}

type Alarm struct {
	Enabled      int     `json:"enabled"`
	HighSetpoint Numeric `json:"high_setpoint"`
	LowSetpoint  Numeric `json:"low_setpoint"`
	Deadband     Numeric `json:"deadband"`
	Latching     int     `json:"latching"`
	Audible      int     `json:"audible"`
	Visible      int     `json:"visible"`
}

type InputType struct {
	SensorType       int `json:"sensor_type"`
	AutoRangeSetting int `json:"auto_range_setting"`
	Range            int `json:"range"`
	Compensation     int `json:"compensation"`
	Units            int `json:"units"`
}

// Input is the state of one sensor input.
type Input struct {
	KelvinTemperature Numeric     `json:"kelvin_temperature"`
	VoltageInput      Numeric     `json:"voltage_input"`
	SensorName        string      `json:"sensor_name"`
	AlarmStatus       AlarmStatus `json:"alarm_status"`
	Alarm             Alarm       `json:"alarm"`
	ReadingStatus     int         `json:"reading_status"`
	CurveNumber       int         `json:"curve_number"`
	InputType         InputType   `json:"input_type"`
}

// CurveHeader describes a calibration curve. Name and SerialNumber are
// fixed-width on the instrument; padding is stored exactly as supplied.
type CurveHeader struct {
	Name                   string  `json:"name"`
	SerialNumber           string  `json:"serial_number"`
	DataFormat             int     `json:"data_format"`
	TemperatureLimit       float64 `json:"temperature_limit"`
	TemperatureCoefficient int     `json:"temperature_coefficient"`
}

// DefaultCurveHeader returns the power-on header with '#'-padded name and serial number.
func DefaultCurveHeader() CurveHeader {
	return CurveHeader{
		Name:         strings.Repeat(curvePadding, curveNameWidth),
		SerialNumber: strings.Repeat(curvePadding, curveSerialWidth),
	}
}

// State is a point-in-time copy of the whole device.
type State struct {
	ID          string           `json:"id"`
	Connected   bool             `json:"connected"`
	Outputs     []Output         `json:"outputs"`
	Inputs      map[string]Input `json:"inputs"`
	CurveHeader CurveHeader      `json:"curve_header"`
}
