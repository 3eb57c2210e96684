package dto

import (
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractOrderRequest defines the data needed to create a contract or
// purchase order document. The id is assigned by the service.
type CreateContractOrderRequest struct {
	Type                 domain.ContractOrderType `json:"type" binding:"required,oneof=contract order"`
	DocumentNumber       string                   `json:"documentNumber" binding:"required"`
	Date                 time.Time                `json:"date" binding:"required"`
	AuthorizingReference string                   `json:"authorizingReference"`
	Awardee              string                   `json:"awardee" binding:"required"`
	TaxID                string                   `json:"taxID"`
	Amount               decimal.Decimal          `json:"amount" binding:"required,gt=0"`
	AmountInWords        string                   `json:"amountInWords"`
	WarrantyPeriod       int                      `json:"warrantyPeriod"`
	WarrantyRetention    decimal.Decimal          `json:"warrantyRetention"`
	PerformanceGuarantee string                   `json:"performanceGuarantee"`
	BankAccount          string                   `json:"bankAccount"`
	BankName             string                   `json:"bankName"`
	BudgetAllocation     string                   `json:"budgetAllocation"`
	DepositAccount       string                   `json:"depositAccount"`
	DepositAccountTitle  string                   `json:"depositAccountTitle"`
	Subject              string                   `json:"subject" binding:"required"`
	LotDescription       string                   `json:"lotDescription"`
	ExecutionPeriod      int                      `json:"executionPeriod"`
	IssuingAuthority     string                   `json:"issuingAuthority"`
	Country              string                   `json:"country"`
	Motto                string                   `json:"motto"`
}

// UpdateContractOrderRequest defines the mutable fields of a contract order.
// Type and id are immutable.
type UpdateContractOrderRequest struct {
	DocumentNumber       *string          `json:"documentNumber"`
	Date                 *time.Time       `json:"date"`
	AuthorizingReference *string          `json:"authorizingReference"`
	Awardee              *string          `json:"awardee"`
	TaxID                *string          `json:"taxID"`
	Amount               *decimal.Decimal `json:"amount"`
	AmountInWords        *string          `json:"amountInWords"`
	WarrantyPeriod       *int             `json:"warrantyPeriod"`
	WarrantyRetention    *decimal.Decimal `json:"warrantyRetention"`
	PerformanceGuarantee *string          `json:"performanceGuarantee"`
	BankAccount          *string          `json:"bankAccount"`
	BankName             *string          `json:"bankName"`
	BudgetAllocation     *string          `json:"budgetAllocation"`
	DepositAccount       *string          `json:"depositAccount"`
	DepositAccountTitle  *string          `json:"depositAccountTitle"`
	Subject              *string          `json:"subject"`
	LotDescription       *string          `json:"lotDescription"`
	ExecutionPeriod      *int             `json:"executionPeriod"`
	IssuingAuthority     *string          `json:"issuingAuthority"`
	Country              *string          `json:"country"`
	Motto                *string          `json:"motto"`
}

// ContractOrderResponse defines the data returned for a contract order.
type ContractOrderResponse struct {
	ContractOrderID      string                   `json:"contractOrderID"`
	Type                 domain.ContractOrderType `json:"type"`
	DocumentNumber       string                   `json:"documentNumber"`
	Date                 time.Time                `json:"date"`
	AuthorizingReference string                   `json:"authorizingReference,omitempty"`
	Awardee              string                   `json:"awardee"`
	TaxID                string                   `json:"taxID,omitempty"`
	Amount               decimal.Decimal          `json:"amount"`
	AmountInWords        string                   `json:"amountInWords,omitempty"`
	WarrantyPeriod       int                      `json:"warrantyPeriod,omitempty"`
	WarrantyRetention    decimal.Decimal          `json:"warrantyRetention,omitempty"`
	PerformanceGuarantee string                   `json:"performanceGuarantee,omitempty"`
	BankAccount          string                   `json:"bankAccount,omitempty"`
	BankName             string                   `json:"bankName,omitempty"`
	BudgetAllocation     string                   `json:"budgetAllocation,omitempty"`
	DepositAccount       string                   `json:"depositAccount,omitempty"`
	DepositAccountTitle  string                   `json:"depositAccountTitle,omitempty"`
	Subject              string                   `json:"subject"`
	LotDescription       string                   `json:"lotDescription,omitempty"`
	ExecutionPeriod      int                      `json:"executionPeriod,omitempty"`
	IssuingAuthority     string                   `json:"issuingAuthority,omitempty"`
	Country              string                   `json:"country,omitempty"`
	Motto                string                   `json:"motto,omitempty"`
	CreatedAt            time.Time                `json:"createdAt"`
}

// ToContractOrderResponse converts a domain.ContractOrder to its DTO.
func ToContractOrderResponse(co *domain.ContractOrder) ContractOrderResponse {
	return ContractOrderResponse{
		ContractOrderID:      co.ContractOrderID,
		Type:                 co.Type,
		DocumentNumber:       co.DocumentNumber,
		Date:                 co.Date,
		AuthorizingReference: co.AuthorizingReference,
		Awardee:              co.Awardee,
		TaxID:                co.TaxID,
		Amount:               co.Amount,
		AmountInWords:        co.AmountInWords,
		WarrantyPeriod:       co.WarrantyPeriod,
		WarrantyRetention:    co.WarrantyRetention,
		PerformanceGuarantee: co.PerformanceGuarantee,
		BankAccount:          co.BankAccount,
		BankName:             co.BankName,
		BudgetAllocation:     co.BudgetAllocation,
		DepositAccount:       co.DepositAccount,
		DepositAccountTitle:  co.DepositAccountTitle,
		Subject:              co.Subject,
		LotDescription:       co.LotDescription,
		ExecutionPeriod:      co.ExecutionPeriod,
		IssuingAuthority:     co.IssuingAuthority,
		Country:              co.Country,
		Motto:                co.Motto,
		CreatedAt:            co.CreatedAt,
	}
}

// ListContractOrdersResponse wraps the list of contract orders.
type ListContractOrdersResponse struct {
	ContractOrders []ContractOrderResponse `json:"contractOrders"`
}

// ToListContractOrdersResponse converts a slice of domain.ContractOrder to ListContractOrdersResponse.
func ToListContractOrdersResponse(contractOrders []domain.ContractOrder) ListContractOrdersResponse {
	responses := make([]ContractOrderResponse, len(contractOrders))
	for i := range contractOrders {
		responses[i] = ToContractOrderResponse(&contractOrders[i])
	}
	return ListContractOrdersResponse{ContractOrders: responses}
}
