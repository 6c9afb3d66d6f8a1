package response

import (
	"time"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/usecase"

	"github.com/google/uuid"
)

type HoldResponse struct {
	HoldID    uuid.UUID `json:"holdId"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	RegionID  uuid.UUID `json:"regionId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ReleaseResponse struct {
	Released int `json:"released"`
}

type CustomerResponse struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PartySize       int    `json:"partySize"`
	ChildrenCount   int    `json:"childrenCount"`
	WantsSmoking    bool   `json:"smoking"`
	Celebrating     bool   `json:"celebrating"`
	CelebrationName string `json:"celebrationName,omitempty"`
}

// ReservationResponse shows exactly one of ExpiresAt (held) or Customer
// (confirmed).
type ReservationResponse struct {
	ID        uuid.UUID         `json:"id"`
	Date      string            `json:"date"`
	TimeSlot  string            `json:"timeSlot"`
	EndTime   string            `json:"endTime,omitempty"`
	RegionID  uuid.UUID         `json:"regionId"`
	Status    string            `json:"status"`
	ExpiresAt *time.Time        `json:"expiresAt,omitempty"`
	Customer  *CustomerResponse `json:"customer,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromHoldResult(h *usecase.HoldResult) HoldResponse {
	return HoldResponse{
		HoldID:    h.HoldID,
		Date:      h.Date.String(),
		TimeSlot:  h.Slot.String(),
		RegionID:  h.RegionID,
		ExpiresAt: h.ExpiresAt,
	}
}

func FromReservation(r *reservation.Reservation, endTime string) ReservationResponse {
	out := ReservationResponse{
		ID:        r.ID(),
		Date:      r.Date().String(),
		TimeSlot:  r.Slot().String(),
		EndTime:   endTime,
		RegionID:  r.RegionID(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
	if h, ok := r.Hold(); ok {
		expiresAt := h.ExpiresAt()
		out.ExpiresAt = &expiresAt
	}
	if c, ok := r.Customer(); ok {
		out.Customer = &CustomerResponse{
			Name:            c.Name(),
			Email:           c.Email().String(),
			Phone:           c.Phone().String(),
			PartySize:       c.PartySize(),
			ChildrenCount:   c.ChildrenCount(),
			WantsSmoking:    c.WantsSmoking(),
			Celebrating:     c.Celebrating(),
			CelebrationName: c.CelebrationName(),
		}
	}
	return out
}

func FromSession(s *usecase.Session) SessionResponse {
	return SessionResponse{
		SessionID: s.ID,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}
