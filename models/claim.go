package models

// RejectionClass is the taxonomy category assigned to a rejection remark.
type RejectionClass string

const (
	PolicyExpired RejectionClass = "Policy Expired"
	FakeDocument  RejectionClass = "Fake Document"
	NotCovered    RejectionClass = "Not Covered"
	Other         RejectionClass = "Other"
	NoRemark      RejectionClass = "No Remark"
)

// Cities is the fixed, ordered set of cities eligible for aggregation and
// scoring. Order matters: ties in the closure score resolve to the first
// city in this list, so it must stay a slice, not a map.
var Cities = []string{"PUNE", "KOLKATA", "RANCHI", "GUWAHATI"}

// Claim is a cleaned, validated claim record. ClaimID and CustomerID are
// always non-empty; admission drops rows missing either. Empty string means
// "absent" for ClaimDate and City. RejectionRemarks is "" when blank in the
// source, never absent.
type Claim struct {
	ClaimID          string
	ClaimDate        string // YYYY-MM-DD, empty if missing or invalid
	CustomerID       string
	ClaimAmount      float64
	PremiumCollected float64
	PaidAmount       float64
	City             string // trimmed + uppercased, empty if missing
	RejectionRemarks string
	RejectionClass   RejectionClass // set by the classifier after admission
}

// CityMetrics holds the running aggregate for one enumerated city.
// LossRatio and RejectionRate are derived once, after accumulation finishes.
type CityMetrics struct {
	ClaimCount       int
	TotalClaimAmount float64
	TotalPaidAmount  float64
	TotalPremium     float64
	RejectedCount    int
	LossRatio        float64
	RejectionRate    float64
}

// AnalysisResult is the output of the city performance analysis, consumed
// by the presentation layer.
type AnalysisResult struct {
	Metrics            map[string]*CityMetrics
	Scores             map[string]float64
	RejectionBreakdown map[RejectionClass]int
	RecommendedCity    string // empty only if the enumerated city set is empty
	Reason             string
}
