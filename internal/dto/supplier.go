package dto

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Type           domain.SupplierType `json:"type" binding:"omitempty,oneof=Societe Particulier"`
	RaisonSociale  string              `json:"raisonSociale" binding:"required"`
	NIF            string              `json:"nif" binding:"required"`
	RCCM           string              `json:"rccm"`
	Classification string              `json:"classification"`
	RegimeFiscal   string              `json:"regimeFiscal"`
	Address        string              `json:"address"`
	Phone          string              `json:"phone"`
	Email          string              `json:"email" binding:"omitempty,email"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Type           *domain.SupplierType `json:"type" binding:"omitempty,oneof=Societe Particulier"`
	RaisonSociale  *string              `json:"raisonSociale"`
	NIF            *string              `json:"nif"`
	RCCM           *string              `json:"rccm"`
	Classification *string              `json:"classification"`
	RegimeFiscal   *string              `json:"regimeFiscal"`
	Address        *string              `json:"address"`
	Phone          *string              `json:"phone"`
	Email          *string              `json:"email" binding:"omitempty,email"`
}

// CreateSupplierInvoiceRequest records an inbound supplier invoice.
type CreateSupplierInvoiceRequest struct {
	InvoiceNumber string                       `json:"invoiceNumber"`
	Date          string                       `json:"date" binding:"required"`
	HT            decimal.Decimal              `json:"ht" binding:"required"`
	TVA           decimal.Decimal              `json:"tva"`
	TTC           decimal.Decimal              `json:"ttc" binding:"required"`
	Status        domain.SupplierInvoiceStatus `json:"status" binding:"omitempty,oneof=paid partial unpaid"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID     string              `json:"supplierID"`
	Type           domain.SupplierType `json:"type"`
	RaisonSociale  string              `json:"raisonSociale"`
	NIF            string              `json:"nif"`
	RCCM           string              `json:"rccm,omitempty"`
	Classification string              `json:"classification,omitempty"`
	RegimeFiscal   string              `json:"regimeFiscal,omitempty"`
	Address        string              `json:"address,omitempty"`
	Phone          string              `json:"phone,omitempty"`
	Email          string              `json:"email,omitempty"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:     s.SupplierID,
		Type:           s.Type,
		RaisonSociale:  s.RaisonSociale,
		NIF:            s.NIF,
		RCCM:           s.RCCM,
		Classification: s.Classification,
		RegimeFiscal:   s.RegimeFiscal,
		Address:        s.Address,
		Phone:          s.Phone,
		Email:          s.Email,
	}
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToListSuppliersResponse converts a slice of domain.Supplier to ListSuppliersResponse.
func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return ListSuppliersResponse{Suppliers: responses}
}
