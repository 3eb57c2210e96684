package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DischargeStatus is the lifecycle state of a discharge receipt.
type DischargeStatus string

const (
	DischargePending   DischargeStatus = "pending"
	DischargeSigned    DischargeStatus = "signed"
	DischargeCompleted DischargeStatus = "completed"
	DischargeOverdue   DischargeStatus = "overdue"
)

// Discharge is a signed receipt acknowledging payment to a service provider
// for a one-off prestation. The provider signs it on delivery.
type Discharge struct {
	DischargeID    string          `json:"dischargeID"` // Primary Key, e.g. "DECHARGE N°007"
	Prestataire    string          `json:"prestataire"`
	Service        string          `json:"service"`
	Montant        decimal.Decimal `json:"montant"`
	DatePrestation time.Time       `json:"datePrestation"`
	Lieu           string          `json:"lieu,omitempty"`
	Telephone      string          `json:"telephone,omitempty"`
	CNI            string          `json:"cni,omitempty"`
	Status         DischargeStatus `json:"status"`
	Signature      string          `json:"signature,omitempty"` // base64 image data
	SignedBy       string          `json:"signedBy,omitempty"`
	SignedAt       *time.Time      `json:"signedAt,omitempty"`
	AuditFields
}
