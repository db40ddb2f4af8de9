package xferwin

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// J2000 is the J2000 reference epoch.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// ElapsedSeconds returns the signed number of seconds from epoch to at.
func ElapsedSeconds(epoch, at time.Time) float64 {
	return unit.TimeFromDay(julian.TimeToJD(at) - julian.TimeToJD(epoch)).Sec()
}
