package flow

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mbflow/ograph"
)

// checkMeasurement validates that meas is defined on exactly the measured
// vertices V \ O, with label values in range; Pauli axes are admitted only
// when pauli is true. Returns an ograph.ErrInconsistentInput wrap on the
// first offending vertex: in-range vertices are checked in ascending
// order, then the smallest out-of-range key.
func checkMeasurement(og *ograph.Open, meas map[int]PPlane, pauli bool) error {
	n := og.Order()
	for v := 0; v < n; v++ {
		pp, ok := meas[v]
		if og.IsMeasured(v) && !ok {
			return errors.Wrapf(ErrMissingMeasurement, "vertex %d", v)
		}
		if !og.IsMeasured(v) && ok {
			return errors.Wrapf(ErrExcessiveMeasurement, "vertex %d", v)
		}
		if !ok {
			continue
		}
		if pp > PPlaneZ || (!pauli && pp.IsPauli()) {
			return errors.Wrapf(ErrInvalidMeasurement, "vertex %d: %d", v, pp)
		}
	}
	if bad, found := minOutOfRangeKeyPP(meas, n); found {
		return errors.Wrapf(ErrExcessiveMeasurement, "vertex %d", bad)
	}

	return nil
}

// liftPlanes validates a gflow plane map and lifts it into the Pauli label
// space shared by the solver core.
func liftPlanes(og *ograph.Open, planes map[int]Plane) (map[int]PPlane, error) {
	meas := make(map[int]PPlane, len(planes))
	for v, p := range planes {
		meas[v] = p.PPlane()
	}
	if err := checkMeasurement(og, meas, false); err != nil {
		return nil, err
	}

	return meas, nil
}
