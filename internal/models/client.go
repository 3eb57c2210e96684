package models

// Client is the row model for the clients table.
type Client struct {
	ClientID      string `json:"clientID"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
	NIF           string `json:"nif,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	AuditFields
}
