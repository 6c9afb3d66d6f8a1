package request

import (
	"venue-reservation/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotsQuery struct {
	Date string `form:"date" binding:"required"`
}

// CheckSlotQuery mirrors usecase.SlotQuery; RegionID is parsed separately
// because form binding has no uuid support.
type CheckSlotQuery struct {
	Date          string `form:"date" binding:"required"`
	Slot          string `form:"timeSlot" binding:"required"`
	RegionID      string `form:"regionId" binding:"required" copier:"-"`
	PartySize     int    `form:"partySize" binding:"required"`
	ChildrenCount int    `form:"childrenCount"`
	WantsSmoking  bool   `form:"smoking"`
}

func (q CheckSlotQuery) ToQuery() (usecase.SlotQuery, error) {
	var out usecase.SlotQuery
	regionID, err := uuid.Parse(q.RegionID)
	if err != nil {
		return out, err
	}
	if err := copier.Copy(&out, &q); err != nil {
		return out, err
	}
	out.RegionID = regionID
	return out, nil
}

// AlternativesQuery mirrors usecase.AlternativesQuery field for field.
type AlternativesQuery struct {
	Date          string `form:"date" binding:"required"`
	Slot          string `form:"timeSlot" binding:"required"`
	PartySize     int    `form:"partySize" binding:"required"`
	ChildrenCount int    `form:"childrenCount"`
	WantsSmoking  bool   `form:"smoking"`
}

func (q AlternativesQuery) ToQuery() (usecase.AlternativesQuery, error) {
	var out usecase.AlternativesQuery
	err := copier.Copy(&out, &q)
	return out, err
}

type EligibleRegionsQuery struct {
	PartySize     int  `form:"partySize" binding:"required"`
	ChildrenCount int  `form:"childrenCount"`
	WantsSmoking  bool `form:"smoking"`
}

type ListReservationsQuery struct {
	Email string `form:"email"`
}
