package colour

import (
	"fmt"
	"math"
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Metric selects how the distance between two colours is measured.
type Metric string

const (
	// MetricRGB is the Euclidean distance in 8-bit RGB space, range [0, ~441.67].
	MetricRGB Metric = "rgb"

	// MetricCIE76 is the Euclidean distance in CIE L*a*b* (delta E 1976).
	MetricCIE76 Metric = "cie76"

	// MetricCIEDE2000 is the CIEDE2000 colour difference.
	MetricCIEDE2000 Metric = "ciede2000"
)

// ValidMetrics returns a list of valid metric names.
func ValidMetrics() []Metric {
	return []Metric{MetricRGB, MetricCIE76, MetricCIEDE2000}
}

// ParseMetric converts a string to a Metric.
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if slices.Contains(ValidMetrics(), m) {
		return m, nil
	}
	return "", fmt.Errorf("invalid metric: %s (valid: %v)", s, ValidMetrics())
}

// Distance returns the Euclidean distance between two colours in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Distance measures a and b with the metric. The perceptual metrics are
// scaled by 100 so they read in conventional delta E units.
func (m Metric) Distance(a, b RGB) float64 {
	switch m {
	case MetricCIE76:
		return toColorful(a).DistanceLab(toColorful(b)) * 100
	case MetricCIEDE2000:
		return toColorful(a).DistanceCIEDE2000(toColorful(b)) * 100
	default:
		return Distance(a, b)
	}
}

// MinDistance returns the smallest distance from c to any colour in set.
// An empty set yields +Inf.
func (m Metric) MinDistance(c RGB, set []RGB) float64 {
	best := math.Inf(1)
	for _, other := range set {
		if d := m.Distance(c, other); d < best {
			best = d
		}
	}
	return best
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
