package domain

// Client is a customer of the company, referenced by name on documents.
type Client struct {
	ClientID      string `json:"clientID"` // Primary Key (UUID)
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
	NIF           string `json:"nif,omitempty"` // tax identification number
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	AuditFields
}
