package ulf

// Upstream plasma constants. SI units unless noted otherwise.
const (
	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.38e-23
	// AdiabaticIndex is the ratio of specific heats for a monatomic plasma.
	AdiabaticIndex = 5. / 3.
	// IonMass is the proton mass in kg.
	IonMass = 1.67e-27
	// SoundSpeed is the background solar-wind sound speed in m/s.
	SoundSpeed = 4.0e4
)

// ReferenceTemperature is the background plasma temperature in K consistent
// with SoundSpeed, from cs² = γkT/m.
const ReferenceTemperature = IonMass * SoundSpeed * SoundSpeed / (AdiabaticIndex * Boltzmann)
