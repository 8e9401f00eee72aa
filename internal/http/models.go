package http

import (
	"time"

	"github.com/subnetcheck/subnetcheck/internal/domain"
)

// MatchRequest asks whether an address lies within the given subnets.
// Mode "any" (default) matches if at least one subnet contains the address,
// "all" only if every subnet does.
type MatchRequest struct {
	Address string   `json:"address" example:"192.168.182.1" validate:"required"`
	Subnets []string `json:"subnets" example:"192.168.182.0/24" validate:"required"`
	Mode    string   `json:"mode,omitempty" example:"any" enums:"any,all"`
}

// MatchAddressesRequest asks whether any of the addresses lies within any of
// the subnets.
type MatchAddressesRequest struct {
	Addresses []string `json:"addresses" example:"192.168.182.1" validate:"required"`
	Subnets   []string `json:"subnets" example:"192.168.182.0/24" validate:"required"`
}

// MatchResponse carries the boolean result of a match query.
type MatchResponse struct {
	Matched bool `json:"matched" example:"true"`
}

// CreateSetRequest is the payload accepted when creating a named subnet set.
type CreateSetRequest struct {
	Name        string   `json:"name" example:"office" validate:"required"`
	Description string   `json:"description" example:"Office networks"`
	CIDRs       []string `json:"cidrs" example:"10.0.0.0/8" validate:"required"`
}

// SubnetSetResponse is the view of a stored subnet set returned to clients.
type SubnetSetResponse struct {
	ID          int64     `json:"id" example:"1"`
	Name        string    `json:"name" example:"office"`
	Description string    `json:"description" example:"Office networks"`
	CIDRs       []string  `json:"cidrs" example:"10.0.0.0/8"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"set not found"`
}

func setToResponse(s domain.SubnetSet) SubnetSetResponse {
	cidrs := make([]string, 0, len(s.CIDRs))
	for _, cidr := range s.CIDRs {
		cidrs = append(cidrs, cidr.String())
	}

	return SubnetSetResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CIDRs:       cidrs,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func setsToResponse(sets []domain.SubnetSet) []SubnetSetResponse {
	out := make([]SubnetSetResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, setToResponse(s))
	}
	return out
}
