package dto

import (
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a client.
type CreateClientRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	NIF           string `json:"nif"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
}

// UpdateClientRequest defines the data allowed for updating a client.
type UpdateClientRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	NIF           *string `json:"nif"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	NIF           string    `json:"nif,omitempty"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		NIF:           c.NIF,
		Address:       c.Address,
		City:          c.City,
		Phone:         c.Phone,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
	}
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToListClientsResponse converts a slice of domain.Client to ListClientsResponse.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Clients: responses}
}
