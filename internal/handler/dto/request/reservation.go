package request

import (
	"strings"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/usecase"

	"github.com/google/uuid"
)

type AcquireHoldRequest struct {
	Date     string    `json:"date" binding:"required"`
	TimeSlot string    `json:"timeSlot" binding:"required"`
	RegionID uuid.UUID `json:"regionId" binding:"required"`
}

func (r AcquireHoldRequest) ToInput(sessionID string) usecase.AcquireHoldInput {
	return usecase.AcquireHoldInput{
		Date:         r.Date,
		Slot:         r.TimeSlot,
		RegionID:     r.RegionID,
		SessionToken: sessionID,
	}
}

// ConfirmReservationRequest leaves value validation to the domain so that
// every client gets the same messages.
type ConfirmReservationRequest struct {
	Date            string    `json:"date" binding:"required"`
	TimeSlot        string    `json:"timeSlot" binding:"required"`
	RegionID        uuid.UUID `json:"regionId" binding:"required"`
	CustomerName    string    `json:"customerName" binding:"required"`
	CustomerEmail   string    `json:"customerEmail" binding:"required"`
	CustomerPhone   string    `json:"customerPhone" binding:"required"`
	PartySize       int       `json:"partySize" binding:"required"`
	ChildrenCount   int       `json:"childrenCount"`
	WantsSmoking    bool      `json:"smoking"`
	Celebrating     bool      `json:"celebrating"`
	CelebrationName *string   `json:"celebrationName,omitempty"`
}

func (r ConfirmReservationRequest) ToInput(sessionID string) usecase.ConfirmInput {
	var celebrationName string
	if r.CelebrationName != nil {
		celebrationName = strings.TrimSpace(*r.CelebrationName)
	}
	return usecase.ConfirmInput{
		Date:         r.Date,
		Slot:         r.TimeSlot,
		RegionID:     r.RegionID,
		SessionToken: sessionID,
		Customer: reservation.CustomerParams{
			Name:            r.CustomerName,
			Email:           r.CustomerEmail,
			Phone:           r.CustomerPhone,
			PartySize:       r.PartySize,
			ChildrenCount:   r.ChildrenCount,
			WantsSmoking:    r.WantsSmoking,
			Celebrating:     r.Celebrating,
			CelebrationName: celebrationName,
		},
	}
}
