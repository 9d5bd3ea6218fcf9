package services

import (
	"testing"

	"claims-analyzer/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		remark string
		want   models.RejectionClass
	}{
		{"Rejection reason: Policy_expired in verification.", models.PolicyExpired},
		{"Claim denied due to Policy_expired.", models.PolicyExpired},
		{"Fake_document reason led to rejection.", models.FakeDocument},
		{"Not_Covered found", models.NotCovered},
		{"item not covered by the plan", models.NotCovered},
		{"weird text", models.Other},
		{"EXPIRED", models.PolicyExpired}, // case-insensitive
	}

	for _, tt := range tests {
		got := Classify(tt.remark)
		if got != tt.want {
			t.Errorf("Classify(%q) = %q; want %q", tt.remark, got, tt.want)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// First matching keyword group wins, whatever else the remark contains.
	tests := []struct {
		remark string
		want   models.RejectionClass
	}{
		{"expired and fake stamp", models.PolicyExpired},
		{"fake claim, not covered", models.FakeDocument},
		{"policy_expired fake_document not_covered", models.PolicyExpired},
	}

	for _, tt := range tests {
		got := Classify(tt.remark)
		if got != tt.want {
			t.Errorf("Classify(%q) = %q; want %q", tt.remark, got, tt.want)
		}
	}
}

func TestAnnotate(t *testing.T) {
	c := NewClassifier(newTestLogger())
	claims := []*models.Claim{
		{ClaimID: "CLM1", CustomerID: "CUST1", RejectionRemarks: ""},
		{ClaimID: "CLM2", CustomerID: "CUST2", RejectionRemarks: "Fake_document reason led to rejection."},
	}

	c.Annotate(claims)

	if claims[0].RejectionClass != models.NoRemark {
		t.Errorf("empty remark: got %q, want %q", claims[0].RejectionClass, models.NoRemark)
	}
	if claims[1].RejectionClass != models.FakeDocument {
		t.Errorf("remark class: got %q, want %q", claims[1].RejectionClass, models.FakeDocument)
	}
}
