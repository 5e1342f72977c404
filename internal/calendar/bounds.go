package calendar

// YearMonth identifies a calendar month; Month is zero-based.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (ym YearMonth) index() int {
	return ym.Year*12 + ym.Month
}

// Bounds is the inclusive range of months the UI may navigate. Stepping past
// either end clamps instead of wrapping, so December to January only crosses
// the year boundary while the result stays inside the range.
type Bounds struct {
	Min YearMonth
	Max YearMonth
}

// NewBounds builds a Bounds, swapping the ends if given in reverse.
func NewBounds(min, max YearMonth) Bounds {
	if min.index() > max.index() {
		min, max = max, min
	}
	return Bounds{Min: min, Max: max}
}

// Contains reports whether the month falls inside the range.
func (b Bounds) Contains(ym YearMonth) bool {
	return ym.index() >= b.Min.index() && ym.index() <= b.Max.index()
}

// Next steps one month forward, clamping at the upper bound.
func (b Bounds) Next(ym YearMonth) YearMonth {
	if ym.index() >= b.Max.index() {
		return ym
	}
	return fromIndex(ym.index() + 1)
}

// Prev steps one month back, clamping at the lower bound.
func (b Bounds) Prev(ym YearMonth) YearMonth {
	if ym.index() <= b.Min.index() {
		return ym
	}
	return fromIndex(ym.index() - 1)
}

// Clamp snaps an arbitrary month into the range.
func (b Bounds) Clamp(ym YearMonth) YearMonth {
	switch {
	case ym.index() < b.Min.index():
		return b.Min
	case ym.index() > b.Max.index():
		return b.Max
	default:
		return ym
	}
}

func fromIndex(idx int) YearMonth {
	return YearMonth{Year: idx / 12, Month: idx % 12}
}
