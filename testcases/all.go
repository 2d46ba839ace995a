package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"linear":      linearCases,
	"quadratic":   quadraticCases,
	"cubic":       cubicCases,
	"high":        highCases,
	"extrapolate": extrapolateCases,
	"degenerate":  degenerateCases,
}
