package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"claims-analyzer/models"
	"claims-analyzer/utils"
)

// fieldRules maps a header name to the coercion applied to that column.
// Columns not in this table are ignored, so unknown headers never error.
var fieldRules = map[string]func(c *models.Claim, value string){
	"CLAIM_ID": func(c *models.Claim, v string) {
		if strings.TrimSpace(v) != "" {
			c.ClaimID = v
		}
	},
	"CLAIM_DATE": func(c *models.Claim, v string) {
		if strings.TrimSpace(v) != "" && isValidDate(v) {
			c.ClaimDate = v
		}
	},
	"CUSTOMER_ID": func(c *models.Claim, v string) {
		if strings.TrimSpace(v) != "" {
			c.CustomerID = v
		}
	},
	"CLAIM_AMOUNT": func(c *models.Claim, v string) {
		c.ClaimAmount = parseAmount(v)
	},
	"PREMIUM_COLLECTED": func(c *models.Claim, v string) {
		c.PremiumCollected = parseAmount(v)
	},
	"PAID_AMOUNT": func(c *models.Claim, v string) {
		c.PaidAmount = parseAmount(v)
	},
	"CITY": func(c *models.Claim, v string) {
		c.City = strings.ToUpper(strings.TrimSpace(v))
	},
	"REJECTION_REMARKS": func(c *models.Claim, v string) {
		c.RejectionRemarks = strings.TrimSpace(v)
	},
}

// Cleaner turns raw comma-delimited claim text into validated Claims.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// CleanFile reads the file at path and cleans its contents. An unreadable
// source is the only error the pipeline surfaces.
func (c *Cleaner) CleanFile(path string) ([]*models.Claim, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cleaner: read %q: %w", path, err)
	}
	return c.Clean(string(data)), nil
}

// Clean parses header + data lines and returns the admitted claims.
// Splitting is a naive comma split: the input format carries no quoting or
// escaping, so embedded delimiters are not a case to handle. Lines whose
// field count differs from the header's are dropped without error, as are
// rows missing CLAIM_ID or CUSTOMER_ID.
func (c *Cleaner) Clean(text string) []*models.Claim {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	headers := strings.Split(strings.TrimSpace(lines[0]), ",")

	claims := make([]*models.Claim, 0, len(lines)-1)
	malformed := 0
	missingIDs := 0

	for _, line := range lines[1:] {
		row := strings.Split(strings.TrimSpace(line), ",")
		if len(row) != len(headers) {
			malformed++
			c.logger.Debug("[cleaner] Dropping malformed row (%d fields, header has %d)", len(row), len(headers))
			continue
		}

		claim := &models.Claim{}
		for i, header := range headers {
			if rule, ok := fieldRules[header]; ok {
				rule(claim, row[i])
			}
		}

		if claim.ClaimID == "" || claim.CustomerID == "" {
			missingIDs++
			c.logger.Debug("[cleaner] Dropping row with missing critical identifier")
			continue
		}

		claims = append(claims, claim)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d claims (malformed %d, missing ids %d)",
		len(lines)-1, len(claims), malformed, missingIDs)
	return claims
}

// parseAmount coerces a monetary field. Blank or unparsable text yields 0.0;
// missing and zero are deliberately indistinguishable downstream.
func parseAmount(v string) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return amount
}

// isValidDate checks YYYY-MM-DD form. Day is only bounded to 1–31 with no
// per-month check (Feb 30 passes), and the year floor is fixed at 2025.
func isValidDate(v string) bool {
	parts := strings.Split(v, "-")
	if len(parts) != 3 {
		return false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return false
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	return year >= 2025 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}
