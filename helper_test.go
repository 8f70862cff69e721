package perfchart

import "time"

// daily returns a series starting on start with one point per day.
//
// benchmarks and portfolios must have the same length.
func daily(start Date, benchmarks, portfolios []float64) Series {
	points := make([]DataPoint, len(benchmarks))
	for i := range benchmarks {
		points[i] = DataPoint{Date: start.Add(i), Benchmark: benchmarks[i], Portfolio: portfolios[i]}
	}
	return NewSeries(points)
}

// year2023 returns a series with one point per day of 2023, benchmark and
// portfolio increasing with the day of the year.
func year2023() Series {
	var points []DataPoint
	for d := range NewRange(NewDate(2023, time.January, 1), NewDate(2023, time.December, 31)).Dates() {
		n := float64(d.Time().YearDay())
		points = append(points, DataPoint{Date: d, Benchmark: 1000 + n, Portfolio: 900 + 2*n})
	}
	return NewSeries(points)
}
