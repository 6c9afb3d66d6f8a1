package response

import (
	"venue-reservation/internal/domain/region"

	"github.com/google/uuid"
)

type RegionResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	DisplayName      string    `json:"displayName"`
	CapacityPerTable int       `json:"capacityPerTable"`
	TableCount       int       `json:"tableCount"`
	TotalSeats       int       `json:"totalSeats"`
	AllowChildren    bool      `json:"allowChildren"`
	AllowSmoking     bool      `json:"allowSmoking"`
	IsActive         bool      `json:"isActive"`
}

func FromRegion(r *region.Region) RegionResponse {
	return RegionResponse{
		ID:               r.ID(),
		Name:             r.Name(),
		DisplayName:      r.DisplayName(),
		CapacityPerTable: r.CapacityPerTable(),
		TableCount:       r.TableCount(),
		TotalSeats:       r.TotalSeats(),
		AllowChildren:    r.AllowChildren(),
		AllowSmoking:     r.AllowSmoking(),
		IsActive:         r.IsActive(),
	}
}

func FromRegions(rs []*region.Region) []RegionResponse {
	out := make([]RegionResponse, len(rs))
	for i, r := range rs {
		out[i] = FromRegion(r)
	}
	return out
}
