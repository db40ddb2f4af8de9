package xferwin

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
)

// TransferReport is the exported form of a Transfer, with times in days.
type TransferReport struct {
	Departure        string  `json:"departure"`
	Arrival          string  `json:"arrival"`
	ElapsedDays      float64 `json:"elapsedDays"`
	TargetPhase      float64 `json:"targetPhaseDeg"`
	PhaseAngle       float64 `json:"phaseAngleDeg"`
	WindowDays       float64 `json:"transferWindowDays"`
	HohmannDays      float64 `json:"hohmannTransferDays"`
	SynodicDays      float64 `json:"synodicPeriodDays"`
	DepartureDeltaV  float64 `json:"departureDeltaV"` // m/s
	ArrivalDeltaV    float64 `json:"arrivalDeltaV"`   // m/s
	HohmannPhase     float64 `json:"hohmannPhaseDeg"`
	SeparationMeters float64 `json:"separation"`
}

// maxTimelineSamples bounds the number of rows of a phase timeline.
const maxTimelineSamples = 1000000

// timelineε absorbs the rounding of (until-from)/step so the end point is kept.
const timelineε = 1e-9

// Report returns the exported form of this transfer.
func (t Transfer) Report() TransferReport {
	return TransferReport{
		Departure:        t.Departure.Name,
		Arrival:          t.Arrival.Name,
		ElapsedDays:      unit.Time(t.Elapsed).Day(),
		TargetPhase:      t.TargetPhase,
		PhaseAngle:       t.PhaseAngle,
		WindowDays:       positiveZero(unit.Time(t.WindowTime).Day()),
		HohmannDays:      unit.Time(t.HohmannTime).Day(),
		SynodicDays:      unit.Time(t.SynodicPeriod).Day(),
		DepartureDeltaV:  t.DepartureΔv,
		ArrivalDeltaV:    t.ArrivalΔv,
		HohmannPhase:     t.HohmannPhase,
		SeparationMeters: t.Separation,
	}
}

// positiveZero turns -0 into +0 so it is never printed as "-0.00".
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// WriteText writes a human readable summary of this transfer.
func (t Transfer) WriteText(w io.Writer) error {
	r := t.Report()
	_, err := fmt.Fprintf(w, "%s -> %s\n"+
		"Phase Angle: %.2f degrees\n"+
		"Time to Transfer Window: %.2f days\n"+
		"Hohmann Transfer Time: %.2f days\n"+
		"Synodic Period: %.2f days\n"+
		"Hohmann Phase Angle: %.2f degrees\n"+
		"Delta-V: %.3f km/s (departure) + %.3f km/s (arrival)\n"+
		"Separation: %.0f km\n",
		r.Departure, r.Arrival, r.PhaseAngle, r.WindowDays, r.HohmannDays, r.SynodicDays, r.HohmannPhase,
		r.DepartureDeltaV/1e3, r.ArrivalDeltaV/1e3, r.SeparationMeters/1e3)
	return err
}

// WriteJSON writes this transfer as indented JSON.
func (t Transfer) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.Report())
}

// WritePhaseTimeline writes a CSV of the phase angle and separation between both bodies,
// sampled every stepDays from fromDays until untilDays (both included).
func WritePhaseTimeline(w io.Writer, b1, b2 OrbitingBody, fromDays, untilDays, stepDays float64) error {
	if !isFinite(fromDays, untilDays, stepDays) {
		return errors.New("timeline bounds and step must be finite")
	}
	if stepDays <= 0 || untilDays < fromDays {
		return errors.New("timeline requires a positive step and until >= from")
	}
	samples := math.Floor((untilDays-fromDays)/stepDays+timelineε) + 1
	if samples > maxTimelineSamples {
		return fmt.Errorf("timeline would have %g samples, the maximum is %d", samples, maxTimelineSamples)
	}
	n := int(samples)
	days := make([]float64, n)
	if n == 1 {
		days[0] = fromDays
	} else {
		floats.Span(days, fromDays, fromDays+float64(n-1)*stepDays)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "phase_deg", "separation_m"}); err != nil {
		return err
	}
	for _, day := range days {
		t := unit.TimeFromDay(day).Sec()
		record := []string{
			strconv.FormatFloat(day, 'f', 3, 64),
			strconv.FormatFloat(PhaseAngle(b1, b2, t), 'f', 6, 64),
			strconv.FormatFloat(Separation(b1, b2, t), 'f', 0, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
