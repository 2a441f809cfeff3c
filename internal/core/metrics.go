package core

import "strconv"

// Metrics summarises one generation of a board.
type Metrics struct {
	Generation int
	Population int
	Births     int
	Deaths     int
	Density    float64
}

// MetricEntry is a labelled, pre-formatted metric value for display.
type MetricEntry struct {
	Label string
	Value string
}

// String joins label and value the way the overlay prints them.
func (e MetricEntry) String() string { return e.Label + " " + e.Value }

// Entries returns the overlay readout in display order.
func (m Metrics) Entries() []MetricEntry {
	return []MetricEntry{
		{Label: "GEN", Value: strconv.Itoa(m.Generation)},
		{Label: "POP", Value: strconv.Itoa(m.Population)},
		{Label: "BIRTHS", Value: strconv.Itoa(m.Births)},
		{Label: "DEATHS", Value: strconv.Itoa(m.Deaths)},
		{Label: "DENSITY", Value: strconv.FormatFloat(m.Density*100, 'f', 1, 64) + "%"},
	}
}
