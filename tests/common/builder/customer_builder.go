//go:build unit || e2e

package builder

import (
	"venue-reservation/internal/domain/reservation"
)

var DefaultPartyLimits = reservation.PartyLimits{Min: 1, Max: 12}

type CustomerBuilder struct {
	Params reservation.CustomerParams
	Limits reservation.PartyLimits
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Params: reservation.CustomerParams{
			Name:          "Jane Doe",
			Email:         "jane@example.com",
			Phone:         "+14155550100",
			PartySize:     4,
			ChildrenCount: 0,
		},
		Limits: DefaultPartyLimits,
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain() (reservation.Customer, error) {
	return reservation.NewCustomer(b.Params, b.Limits)
}

func (b *CustomerBuilder) MustBuild() reservation.Customer {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Params.Email = email
	return b
}

func (b *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	b.Params.Phone = phone
	return b
}

func (b *CustomerBuilder) WithParty(size, children int) *CustomerBuilder {
	b.Params.PartySize = size
	b.Params.ChildrenCount = children
	return b
}

func (b *CustomerBuilder) WithSmoking() *CustomerBuilder {
	b.Params.WantsSmoking = true
	return b
}

func (b *CustomerBuilder) Celebrating(name string) *CustomerBuilder {
	b.Params.Celebrating = true
	b.Params.CelebrationName = name
	return b
}
