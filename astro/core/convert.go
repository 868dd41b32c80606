package core

// EnergyFromFrequency converts a frequency in Hz to a dimensionless photon
// energy ε = hν / mₑc².
func EnergyFromFrequency(nu float64) float64 {
	return Planck * nu / ElectronRestEnergy
}

// FrequencyFromEnergy converts a dimensionless photon energy back to Hz.
func FrequencyFromEnergy(epsilon float64) float64 {
	return epsilon * ElectronRestEnergy / Planck
}

// EnergiesFromFrequencies fills dst with ε for every frequency in nu.
// dst and nu must have equal length.
func EnergiesFromFrequencies(dst, nu []float64) {
	if len(dst) != len(nu) {
		panic("core: EnergiesFromFrequencies length mismatch")
	}
	for i, v := range nu {
		dst[i] = EnergyFromFrequency(v)
	}
}

// BlobFrameEnergy transforms an observed photon energy to the comoving frame
// of a blob at redshift z with Doppler factor delta: ε′ = ε(1+z)/δ_D.
func BlobFrameEnergy(epsilon, z, delta float64) float64 {
	return epsilon * (1 + z) / delta
}
