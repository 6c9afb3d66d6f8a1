package response

import (
	"venue-reservation/internal/domain/region"
	"venue-reservation/internal/usecase"
)

type RegionAvailabilityResponse struct {
	Region          RegionResponse `json:"region"`
	AvailableTables int            `json:"availableTables"`
}

type SlotAvailabilityResponse struct {
	TimeSlot         string                       `json:"timeSlot"`
	AvailableRegions []RegionAvailabilityResponse `json:"availableRegions"`
}

type ReasonResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SlotCheckResponse struct {
	Date            string          `json:"date"`
	TimeSlot        string          `json:"timeSlot"`
	Region          RegionResponse  `json:"region"`
	Available       bool            `json:"available"`
	AvailableTables int             `json:"availableTables,omitempty"`
	Reason          *ReasonResponse `json:"reason,omitempty"`
}

func FromSlotAvailability(slots []usecase.SlotAvailability) []SlotAvailabilityResponse {
	out := make([]SlotAvailabilityResponse, len(slots))
	for i, s := range slots {
		regions := make([]RegionAvailabilityResponse, len(s.Regions))
		for j, ra := range s.Regions {
			regions[j] = RegionAvailabilityResponse{
				Region:          FromRegion(ra.Region),
				AvailableTables: ra.AvailableTables,
			}
		}
		out[i] = SlotAvailabilityResponse{TimeSlot: s.Slot.String(), AvailableRegions: regions}
	}
	return out
}

func FromSlotCheck(c *usecase.SlotCheck) SlotCheckResponse {
	return SlotCheckResponse{
		Date:            c.Date.String(),
		TimeSlot:        c.Slot.String(),
		Region:          FromRegion(c.Region),
		Available:       c.Available,
		AvailableTables: c.AvailableTables,
		Reason:          fromReason(c.Reason),
	}
}

func FromSlotChecks(cs []usecase.SlotCheck) []SlotCheckResponse {
	out := make([]SlotCheckResponse, len(cs))
	for i := range cs {
		out[i] = FromSlotCheck(&cs[i])
	}
	return out
}

func fromReason(r *region.Ineligibility) *ReasonResponse {
	if r == nil {
		return nil
	}
	return &ReasonResponse{Code: string(r.Code), Message: r.Message}
}
