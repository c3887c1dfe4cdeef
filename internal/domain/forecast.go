package domain

// ForecastPoint is one day of predicted demand.
type ForecastPoint struct {
	Date   Date    `json:"date"`
	Demand float64 `json:"demand"`
}

// ForecastSeries is a validated daily demand forecast: dates strictly
// increasing with no gaps, demand never negative, length at least one.
// Build one with NewForecastSeries; a zero value is not usable.
type ForecastSeries struct {
	points []ForecastPoint
}

// NewForecastSeries validates the points and wraps them in a series.
// The slice is copied so later mutation by the caller cannot leak in.
func NewForecastSeries(points []ForecastPoint) (ForecastSeries, error) {
	if len(points) == 0 {
		return ForecastSeries{}, invalidForecastf("series is empty")
	}

	for i, p := range points {
		if p.Demand < 0 {
			return ForecastSeries{}, invalidForecastf("negative demand %.2f at %s", p.Demand, p.Date)
		}
		if i == 0 {
			continue
		}
		gap := points[i-1].Date.DaysUntil(p.Date)
		switch {
		case gap == 0:
			return ForecastSeries{}, invalidForecastf("duplicate date %s", p.Date)
		case gap < 0:
			return ForecastSeries{}, invalidForecastf("dates out of order at %s", p.Date)
		case gap > 1:
			return ForecastSeries{}, invalidForecastf("gap of %d days before %s", gap, p.Date)
		}
	}

	copied := make([]ForecastPoint, len(points))
	copy(copied, points)
	return ForecastSeries{points: copied}, nil
}

// Len returns the horizon length in days.
func (s ForecastSeries) Len() int {
	return len(s.points)
}

// Point returns the i-th forecast day.
func (s ForecastSeries) Point(i int) ForecastPoint {
	return s.points[i]
}

// StartDate returns the first forecast date (day 0 of the analysis).
func (s ForecastSeries) StartDate() Date {
	return s.points[0].Date
}

// Demands returns the demand values in date order.
func (s ForecastSeries) Demands() []float64 {
	demands := make([]float64, len(s.points))
	for i, p := range s.points {
		demands[i] = p.Demand
	}
	return demands
}

// CumulativeDemand returns the running total of demand, aligned with the
// series dates. Every calculator walks this same curve.
func (s ForecastSeries) CumulativeDemand() []float64 {
	cum := make([]float64, len(s.points))
	var total float64
	for i, p := range s.points {
		total += p.Demand
		cum[i] = total
	}
	return cum
}

// TotalDemand returns the demand summed over the whole horizon.
func (s ForecastSeries) TotalDemand() float64 {
	var total float64
	for _, p := range s.points {
		total += p.Demand
	}
	return total
}

// MeanDemand returns the average daily demand over the horizon.
func (s ForecastSeries) MeanDemand() float64 {
	if len(s.points) == 0 {
		return 0
	}
	return s.TotalDemand() / float64(len(s.points))
}
