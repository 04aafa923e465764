package ballistics

import "math"

const (
	// EnergyDivisor converts grains·fps² to foot-pounds.
	EnergyDivisor = 450436.0

	// TOPFactor is the energy per pound of rifle that yields one MOA.
	TOPFactor = 200.0
)

// KineticEnergy returns muzzle energy in foot-pounds.
func KineticEnergy(grains, fps float64) float64 {
	return grains * fps * fps / EnergyDivisor
}

// MOA returns the expected 5-round group size. A zero rifle weight yields
// +Inf.
func MOA(ke, rifleLbs float64) float64 {
	return ke / TOPFactor / rifleLbs
}

func GroupSize(in Inputs) float64 {
	return MOA(KineticEnergy(in.ProjectileGrains, in.VelocityFPS), in.RifleLbs)
}

// ValueForOneMOA solves the formula for the variable outside pair so that
// the group size is exactly 1.0 MOA, holding the pair at their current
// values. It returns the solved value and its unit.
func ValueForOneMOA(in Inputs, pair Pair) (float64, string) {
	switch pair.Free() {
	case RifleWeight:
		ke := KineticEnergy(in.ProjectileGrains, in.VelocityFPS)
		return ke / TOPFactor, RifleWeight.Unit()
	case Velocity:
		targetKE := TOPFactor * in.RifleLbs
		return math.Sqrt(targetKE * EnergyDivisor / in.ProjectileGrains), Velocity.Unit()
	default:
		targetKE := TOPFactor * in.RifleLbs
		return targetKE * EnergyDivisor / (in.VelocityFPS * in.VelocityFPS), Projectile.Unit()
	}
}
