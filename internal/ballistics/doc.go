// Package ballistics provides the Theory of Precision (TOP) formula used to
// estimate rifle group size from three inputs:
//
//   - projectile weight in grains
//   - muzzle velocity in feet per second
//   - rifle weight in pounds
//
// The formula is closed form:
//
//	ke  = grains * fps² / 450436
//	moa = ke / 200 / rifle
//
// Functions in this package are pure and perform no range checking. Callers
// clamp inputs with [Range.Clamp] or [Inputs.Clamp] before evaluating.
//
// # Example
//
//	in := ballistics.DefaultInputs()
//	moa := ballistics.GroupSize(in)
//	v, unit := ballistics.ValueForOneMOA(in, ballistics.PairExcluding(ballistics.RifleWeight))
package ballistics
