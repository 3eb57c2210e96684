package dto

import (
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDischargeRequest defines the data needed to create a discharge
// receipt. The discharge number is assigned by the service.
type CreateDischargeRequest struct {
	Prestataire    string          `json:"prestataire" binding:"required"`
	Service        string          `json:"service" binding:"required"`
	Montant        decimal.Decimal `json:"montant" binding:"required,gt=0"`
	DatePrestation time.Time       `json:"datePrestation" binding:"required"`
	Lieu           string          `json:"lieu"`
	Telephone      string          `json:"telephone"`
	CNI            string          `json:"cni"`
}

// UpdateDischargeRequest defines the mutable fields of a discharge. The
// signature fields are set through the sign operation, not here.
type UpdateDischargeRequest struct {
	Prestataire    *string                 `json:"prestataire"`
	Service        *string                 `json:"service"`
	Montant        *decimal.Decimal        `json:"montant"`
	DatePrestation *time.Time              `json:"datePrestation"`
	Lieu           *string                 `json:"lieu"`
	Telephone      *string                 `json:"telephone"`
	CNI            *string                 `json:"cni"`
	Status         *domain.DischargeStatus `json:"status" binding:"omitempty,oneof=pending signed completed overdue"`
}

// SignDischargeRequest carries the provider's signature.
type SignDischargeRequest struct {
	Signature string `json:"signature" binding:"required"` // base64 image data
	SignedBy  string `json:"signedBy" binding:"required"`
}

// DischargeResponse defines the data returned for a discharge.
type DischargeResponse struct {
	DischargeID    string                 `json:"dischargeID"`
	Prestataire    string                 `json:"prestataire"`
	Service        string                 `json:"service"`
	Montant        decimal.Decimal        `json:"montant"`
	DatePrestation time.Time              `json:"datePrestation"`
	Lieu           string                 `json:"lieu,omitempty"`
	Telephone      string                 `json:"telephone,omitempty"`
	CNI            string                 `json:"cni,omitempty"`
	Status         domain.DischargeStatus `json:"status"`
	Signature      string                 `json:"signature,omitempty"`
	SignedBy       string                 `json:"signedBy,omitempty"`
	SignedAt       *time.Time             `json:"signedAt,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// ToDischargeResponse converts a domain.Discharge to DischargeResponse DTO.
func ToDischargeResponse(d *domain.Discharge) DischargeResponse {
	return DischargeResponse{
		DischargeID:    d.DischargeID,
		Prestataire:    d.Prestataire,
		Service:        d.Service,
		Montant:        d.Montant,
		DatePrestation: d.DatePrestation,
		Lieu:           d.Lieu,
		Telephone:      d.Telephone,
		CNI:            d.CNI,
		Status:         d.Status,
		Signature:      d.Signature,
		SignedBy:       d.SignedBy,
		SignedAt:       d.SignedAt,
		CreatedAt:      d.CreatedAt,
	}
}

// ListDischargesResponse wraps the list of discharges.
type ListDischargesResponse struct {
	Discharges []DischargeResponse `json:"discharges"`
}

// ToListDischargesResponse converts a slice of domain.Discharge to ListDischargesResponse.
func ToListDischargesResponse(discharges []domain.Discharge) ListDischargesResponse {
	responses := make([]DischargeResponse, len(discharges))
	for i := range discharges {
		responses[i] = ToDischargeResponse(&discharges[i])
	}
	return ListDischargesResponse{Discharges: responses}
}
