package services

import (
	"strings"

	"claims-analyzer/models"
	"claims-analyzer/utils"
)

// rejectionRule pairs a keyword group with the category it maps to.
type rejectionRule struct {
	keywords []string
	class    models.RejectionClass
}

// rejectionRules are evaluated top-down over the lowercased remark; the
// first rule with any matching keyword wins. Order is the priority, so this
// stays a slice rather than a map.
var rejectionRules = []rejectionRule{
	{[]string{"expired", "policy_expired"}, models.PolicyExpired},
	{[]string{"fake", "fake_document"}, models.FakeDocument},
	{[]string{"covered", "not_covered"}, models.NotCovered},
}

// Classifier assigns a RejectionClass to cleaned claims.
type Classifier struct {
	logger *utils.Logger
}

// NewClassifier creates a Classifier with the given logger.
func NewClassifier(logger *utils.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// Classify maps a free-text remark to its taxonomy category. Matching is
// case-insensitive; a remark containing keywords from several groups takes
// the first group in priority order.
func Classify(remark string) models.RejectionClass {
	remark = strings.ToLower(remark)
	for _, rule := range rejectionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(remark, kw) {
				return rule.class
			}
		}
	}
	return models.Other
}

// Annotate sets RejectionClass on every claim. A claim with no remark is
// labeled NoRemark without consulting the keyword rules.
func (c *Classifier) Annotate(claims []*models.Claim) {
	withRemark := 0
	for _, claim := range claims {
		if claim.RejectionRemarks == "" {
			claim.RejectionClass = models.NoRemark
			continue
		}
		claim.RejectionClass = Classify(claim.RejectionRemarks)
		withRemark++
	}
	c.logger.Info("[classifier] Annotated %d claims (%d carrying remarks)", len(claims), withRemark)
}
