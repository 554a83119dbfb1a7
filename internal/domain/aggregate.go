package domain

// Distributions are the reference populations for percentile scoring, in the
// iteration order of the collection they were built from.
type Distributions struct {
	Cost          []float64
	InternetSpeed []float64
}

// with returns the accumulator extended by one city.
func (d Distributions) with(c City) Distributions {
	return Distributions{
		Cost:          append(d.Cost, c.Cost),
		InternetSpeed: append(d.InternetSpeed, c.InternetSpeed),
	}
}

// Aggregate folds the whole collection into its cost and internet-speed
// distributions. No city is skipped, including ones the weather filter will
// later drop.
func Aggregate(cities []City) Distributions {
	acc := Distributions{
		Cost:          make([]float64, 0, len(cities)),
		InternetSpeed: make([]float64, 0, len(cities)),
	}
	for _, c := range cities {
		acc = acc.with(c)
	}
	return acc
}

// AverageCost returns the mean cost of living across the collection.
func AverageCost(cities []City) (float64, error) {
	if len(cities) == 0 {
		return 0, ErrEmptyDistribution
	}
	var total float64
	for _, c := range cities {
		total += c.Cost
	}
	return total / float64(len(cities)), nil
}
