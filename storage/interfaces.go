package storage

import "claims-analyzer/models"

// ClaimWriter is the interface any export backend must satisfy.
type ClaimWriter interface {
	Write(claims []*models.Claim) error
	Close() error
}
