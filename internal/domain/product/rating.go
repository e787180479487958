package product

import "math"

// RatingSummary holds the denormalized review aggregates stored on a product.
// A nil AverageRating means the product has no approved reviews.
type RatingSummary struct {
	AverageRating *float64
	ReviewCount   int
	Distribution  map[int]int
}

// SummarizeRatings recomputes the aggregates from the full set of approved
// review ratings. The mean is rounded to one decimal. This is a full O(n)
// recomputation rather than an incremental update; review volumes per product
// stay small enough that it is the simpler correct choice.
func SummarizeRatings(ratings []int) RatingSummary {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	if len(ratings) == 0 {
		return RatingSummary{Distribution: dist}
	}

	sum := 0
	count := 0
	for _, r := range ratings {
		if r < 1 || r > 5 {
			continue
		}
		dist[r]++
		sum += r
		count++
	}

	if count == 0 {
		return RatingSummary{Distribution: dist}
	}

	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return RatingSummary{
		AverageRating: &avg,
		ReviewCount:   count,
		Distribution:  dist,
	}
}
