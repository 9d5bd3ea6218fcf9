package services

import (
	"fmt"
	"strings"

	"claims-analyzer/models"
	"claims-analyzer/utils"
)

// Closure score weights. Loss ratio and rejection rate push a city toward
// closure; claim volume (in hundreds) pushes against it.
const (
	lossRatioWeight     = 0.5
	rejectionRateWeight = 0.3
	claimVolumeWeight   = 0.2
)

// Analyzer folds cleaned claims into per-city metrics and recommends a
// city for closure.
type Analyzer struct {
	logger *utils.Logger
}

// NewAnalyzer creates an Analyzer with the given logger.
func NewAnalyzer(logger *utils.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze aggregates the claims per enumerated city, derives the ratio
// metrics, scores each city and selects the recommendation. Claims whose
// city is blank or outside the enumerated set stay in the dataset but
// contribute to no city's metrics.
func (a *Analyzer) Analyze(claims []*models.Claim) *models.AnalysisResult {
	metrics := make(map[string]*models.CityMetrics, len(models.Cities))
	for _, city := range models.Cities {
		metrics[city] = &models.CityMetrics{}
	}

	breakdown := make(map[models.RejectionClass]int)
	skipped := 0
	for _, claim := range claims {
		if claim.RejectionClass != "" {
			breakdown[claim.RejectionClass]++
		}

		m, ok := metrics[claim.City]
		if !ok {
			skipped++
			continue
		}
		m.ClaimCount++
		m.TotalClaimAmount += claim.ClaimAmount
		m.TotalPaidAmount += claim.PaidAmount
		m.TotalPremium += claim.PremiumCollected
		if claim.RejectionRemarks != "" {
			// Any non-empty remark counts as rejected, whatever its category.
			m.RejectedCount++
		}
	}

	// Ratios are finalized exactly once, after the full pass. Zero
	// denominators yield 0.0, never NaN or Inf.
	for _, city := range models.Cities {
		m := metrics[city]
		if m.TotalPremium > 0 {
			m.LossRatio = m.TotalPaidAmount / m.TotalPremium
		}
		if m.ClaimCount > 0 {
			m.RejectionRate = float64(m.RejectedCount) / float64(m.ClaimCount)
		}
	}

	scores := make(map[string]float64, len(models.Cities))
	recommended := ""
	best := 0.0
	for i, city := range models.Cities {
		m := metrics[city]
		score := m.LossRatio*lossRatioWeight +
			m.RejectionRate*rejectionRateWeight -
			float64(m.ClaimCount)/100*claimVolumeWeight
		scores[city] = score

		// Strict > keeps the first city in enumeration order on ties.
		if i == 0 || score > best {
			best = score
			recommended = city
		}
	}

	result := &models.AnalysisResult{
		Metrics:            metrics,
		Scores:             scores,
		RejectionBreakdown: breakdown,
		RecommendedCity:    recommended,
	}
	if recommended != "" {
		result.Reason = fmt.Sprintf(
			"%s has high loss ratio and rejection rate, indicating operational inefficiencies.",
			recommended)
	}

	a.logger.Info("[analyzer] Analyzed %d claims (%d outside enumerated cities) — recommending %s",
		len(claims), skipped, recommended)
	return result
}

// Print renders the analysis to the terminal. Presentation only; the
// AnalysisResult stays the API surface.
func (a *Analyzer) Print(r *models.AnalysisResult) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 CITY CLAIMS PERFORMANCE\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	for _, city := range models.Cities {
		m := r.Metrics[city]
		fmt.Printf("\033[1;33m  %s\033[0m\n", city)
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  Claim count        : \033[1m%d\033[0m\n", m.ClaimCount)
		fmt.Printf("  Total claim amount : $%.2f\n", m.TotalClaimAmount)
		fmt.Printf("  Total paid amount  : $%.2f\n", m.TotalPaidAmount)
		fmt.Printf("  Total premium      : $%.2f\n", m.TotalPremium)
		fmt.Printf("  Rejected count     : %d\n", m.RejectedCount)
		fmt.Printf("  Loss ratio         : \033[1;32m%.2f\033[0m\n", m.LossRatio)
		fmt.Printf("  Rejection rate     : \033[1;32m%.2f%%\033[0m\n", m.RejectionRate*100)
		fmt.Printf("  Closure score      : %.4f\n", r.Scores[city])
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Rejection Classes\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.RejectionBreakdown) == 0 {
		fmt.Printf("  No classified claims\n")
	} else {
		order := []models.RejectionClass{
			models.PolicyExpired, models.FakeDocument, models.NotCovered,
			models.Other, models.NoRemark,
		}
		for _, class := range order {
			if count, ok := r.RejectionBreakdown[class]; ok {
				fmt.Printf("  %-15s %s (%d)\n", class, strings.Repeat("█", count), count)
			}
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Recommendation\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.RecommendedCity == "" {
		fmt.Printf("  No city eligible for recommendation\n")
	} else {
		fmt.Printf("  Close operations in \033[1;31m%s\033[0m\n", r.RecommendedCity)
		fmt.Printf("  %s\n", r.Reason)
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}
