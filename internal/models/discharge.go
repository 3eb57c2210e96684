package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DischargeStatus is the lifecycle state of a discharge receipt.
type DischargeStatus string

// Discharge is the row model for the discharges table.
type Discharge struct {
	DischargeID    string          `json:"dischargeID"`
	Prestataire    string          `json:"prestataire"`
	Service        string          `json:"service"`
	Montant        decimal.Decimal `json:"montant"`
	DatePrestation time.Time       `json:"datePrestation"`
	Lieu           string          `json:"lieu,omitempty"`
	Telephone      string          `json:"telephone,omitempty"`
	CNI            string          `json:"cni,omitempty"`
	Status         DischargeStatus `json:"status"`
	Signature      string          `json:"signature,omitempty"`
	SignedBy       string          `json:"signedBy,omitempty"`
	SignedAt       *time.Time      `json:"signedAt,omitempty"`
	AuditFields
}
