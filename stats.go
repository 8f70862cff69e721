package perfchart

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TradingDays annualizes daily statistics.
const TradingDays = 252

// Statistics summarizes the portfolio line of a series.
//
// Returns are daily simple returns between consecutive points, percentages are
// in percent. High and Low are the extremes of the calendar year of the latest
// point. MaxDrawdown is zero or negative. Sharpe is annualized without a risk
// free rate. TailRatio is the 95th percentile of the returns over their 5th
// percentile, in absolute value.
type Statistics struct {
	Year             int     `json:"year"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	WeekToDate       float64 `json:"week_to_date"`
	MonthToDate      float64 `json:"month_to_date"`
	YearToDate       float64 `json:"year_to_date"`
	MaxDrawdown      float64 `json:"max_drawdown"`
	AnnualVolatility float64 `json:"annual_volatility"`
	Sharpe           float64 `json:"sharpe"`
	TailRatio        float64 `json:"tail_ratio"`
}

// Stats computes the statistics of the portfolio values of s.
//
// Ratios that cannot be computed (fewer than two returns, no dispersion) are 0.
func Stats(s Series) Statistics {
	var st Statistics
	if len(s) == 0 {
		return st
	}
	last := s.Last().Date
	st.Year = last.Year()
	var year []float64
	for _, p := range s {
		if p.Date.Year() == st.Year {
			year = append(year, p.Portfolio)
		}
	}
	st.High, st.Low = floats.Max(year), floats.Min(year)

	returns := make([]float64, 0, len(s))
	for i := 1; i < len(s); i++ {
		returns = append(returns, change(s[i-1].Portfolio, s[i].Portfolio))
	}
	dates := s[1:]

	st.WeekToDate = toDate(returns, dates, func(d Date) [2]int {
		_, w := d.Time().ISOWeek()
		return [2]int{d.Year(), w}
	})
	st.MonthToDate = toDate(returns, dates, func(d Date) [2]int { return [2]int{d.Year(), int(d.Month())} })
	st.YearToDate = toDate(returns, dates, func(d Date) [2]int { return [2]int{d.Year(), 0} })
	st.MaxDrawdown = 100 * maxDrawdown(s.Portfolios())

	if len(returns) < 2 {
		return st
	}
	mean, std := stat.MeanStdDev(returns, nil)
	st.AnnualVolatility = 100 * std * math.Sqrt(TradingDays)
	if std > 0 {
		st.Sharpe = mean / std * math.Sqrt(TradingDays)
	}

	sorted := slices.Clone(returns)
	slices.Sort(sorted)
	if low := stat.Quantile(0.05, stat.Empirical, sorted, nil); low != 0 {
		st.TailRatio = math.Abs(stat.Quantile(0.95, stat.Empirical, sorted, nil)) / math.Abs(low)
	}
	return st
}

// change returns the simple return from a to b, 0 when a is 0.
func change(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	return b/a - 1
}

// toDate compounds the trailing returns sharing the period of the last one, in percent.
func toDate(returns []float64, points Series, period func(Date) [2]int) float64 {
	if len(returns) == 0 {
		return 0
	}
	current := period(points.Last().Date)
	growth := 1.0
	for i := len(returns) - 1; i >= 0 && period(points[i].Date) == current; i-- {
		growth *= 1 + returns[i]
	}
	return 100 * (growth - 1)
}

// maxDrawdown returns the largest relative fall from a previous peak.
func maxDrawdown(values []float64) float64 {
	var peak, worst float64
	for i, v := range values {
		if i == 0 || v > peak {
			peak = v
		}
		if peak > 0 {
			worst = min(worst, v/peak-1)
		}
	}
	return worst
}
