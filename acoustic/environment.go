package acoustic

import (
	"math"
)

const (
	standardPressureKPa = 101.325
	dryAirGasConstant   = 287.05 // J/(kg·K)
	kelvinOffset        = 273.15
)

// Environment describes the air inside the bore. Pressure only matters for
// air density; when it is zero it is derived from AltitudeM.
type Environment struct {
	TemperatureC     float64 `json:"temperature_c"`
	RelativeHumidity float64 `json:"relative_humidity"` // percent, 0-100
	PressureKPa      float64 `json:"pressure_kpa,omitempty"`
	AltitudeM        float64 `json:"altitude_m,omitempty"`
}

// StandardEnvironment is 20 °C, 50 % humidity at sea level.
func StandardEnvironment() Environment {
	return Environment{
		TemperatureC:     20,
		RelativeHumidity: 50,
		PressureKPa:      standardPressureKPa,
	}
}

// SoundSpeed approximates the speed of sound in humid air (m/s).
func (e Environment) SoundSpeed() float64 {
	rh := math.Max(0, math.Min(100, e.RelativeHumidity))
	return 331.3 + 0.606*e.TemperatureC + 0.0124*rh
}

// Pressure returns the static pressure in kPa, from the barometric formula
// when no explicit pressure is set.
func (e Environment) Pressure() float64 {
	if e.PressureKPa > 0 {
		return e.PressureKPa
	}
	return standardPressureKPa * math.Pow(1-2.25577e-5*e.AltitudeM, 5.25588)
}

// AirDensity returns the dry-air density (kg/m³) for the ideal gas law.
func (e Environment) AirDensity() float64 {
	return e.Pressure() * 1000 / (dryAirGasConstant * (e.TemperatureC + kelvinOffset))
}
