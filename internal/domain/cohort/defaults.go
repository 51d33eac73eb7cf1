package cohort

// DefaultSampleCount is the per-cohort sample size of the reference design.
const DefaultSampleCount = 1000

// Defaults returns the five reference cohorts. The correlation between job
// satisfaction and intent to quit weakens as firms grow, which is the
// moderation effect the generated data is meant to exhibit. The reference
// configuration labeled both the 6-25 and 101-500 cohorts "large"; the
// default table uses distinct labels so that every label maps to exactly one
// cohort, and the old labeling remains reachable through a cohort file.
func Defaults() []Spec {
	return []Spec{
		{
			Name: "micro",
			Corr: [][]float64{
				{1, -0.40, -0.03, 0.11},
				{-0.40, 1, -0.05, -0.09},
				{-0.03, -0.05, 1, 0.05},
				{0.11, -0.09, 0.05, 1},
			},
			SizeMin:     1,
			SizeMax:     5,
			SampleCount: DefaultSampleCount,
		},
		{
			Name: "small",
			Corr: [][]float64{
				{1, -0.30, -0.02, 0.09},
				{-0.30, 1, -0.04, -0.08},
				{-0.02, -0.04, 1, 0.06},
				{0.09, -0.08, 0.06, 1},
			},
			SizeMin:     6,
			SizeMax:     26,
			SampleCount: DefaultSampleCount,
		},
		{
			Name: "medium",
			Corr: [][]float64{
				{1, -0.20, -0.04, 0.08},
				{-0.20, 1, -0.06, -0.07},
				{-0.04, -0.06, 1, 0.04},
				{0.08, -0.07, 0.04, 1},
			},
			SizeMin:     26,
			SizeMax:     101,
			SampleCount: DefaultSampleCount,
		},
		{
			Name: "large",
			Corr: [][]float64{
				{1, -0.10, -0.03, 0.10},
				{-0.10, 1, -0.05, -0.06},
				{-0.03, -0.05, 1, 0.07},
				{0.10, -0.06, 0.07, 1},
			},
			SizeMin:     101,
			SizeMax:     501,
			SampleCount: DefaultSampleCount,
		},
		{
			Name: "very large",
			Corr: [][]float64{
				{1, -0.02, -0.02, 0.12},
				{-0.02, 1, -0.04, -0.05},
				{-0.02, -0.04, 1, 0.05},
				{0.12, -0.05, 0.05, 1},
			},
			SizeMin:     501,
			SizeMax:     2001,
			SampleCount: DefaultSampleCount,
		},
	}
}
