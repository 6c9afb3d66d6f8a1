package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"venue-reservation/internal/domain/region"
)

var (
	ErrInvalidEmail            = errors.New("invalid email format")
	ErrInvalidPhone            = errors.New("invalid phone number format")
	ErrEmptyCustomerName       = errors.New("customer name cannot be empty")
	ErrCustomerNameTooLong     = errors.New("customer name is too long")
	ErrPartySizeOutOfRange     = errors.New("party size is out of range")
	ErrInvalidChildrenCount    = errors.New("children count cannot be negative")
	ErrTooManyChildren         = errors.New("children count cannot exceed party size")
	ErrCelebrationNameRequired = errors.New("celebration name is required when celebrating")
	ErrCelebrationNameTooLong  = errors.New("celebration name is too long")
	ErrInvalidPartyLimits      = errors.New("invalid party size limits")
)

const maxNameLength = 100

var (
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
	phoneRegex      = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

type Email struct {
	value string
}

// NewEmail accepts local@domain.tld and normalises to lower case.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}

type Phone struct {
	value string
}

// NewPhone strips spaces, dashes and parentheses before matching an E.164-like
// pattern. The stored value is the normalised form.
func NewPhone(s string) (Phone, error) {
	normalized := phoneSeparators.ReplaceAllString(s, "")
	if !phoneRegex.MatchString(normalized) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: normalized}, nil
}

func (p Phone) String() string {
	return p.value
}

// PartyLimits bounds the party size a venue accepts.
type PartyLimits struct {
	Min int
	Max int
}

func NewPartyLimits(lo, hi int) (PartyLimits, error) {
	if lo < 1 || hi < lo {
		return PartyLimits{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidPartyLimits, lo, hi)
	}
	return PartyLimits{Min: lo, Max: hi}, nil
}

func (l PartyLimits) Contains(size int) bool {
	return size >= l.Min && size <= l.Max
}

type CustomerParams struct {
	Name            string
	Email           string
	Phone           string
	PartySize       int
	ChildrenCount   int
	WantsSmoking    bool
	Celebrating     bool
	CelebrationName string
}

// Customer is the guest data attached to a confirmed reservation.
type Customer struct {
	name            string
	email           Email
	phone           Phone
	partySize       int
	childrenCount   int
	wantsSmoking    bool
	celebrating     bool
	celebrationName string
}

func NewCustomer(p CustomerParams, limits PartyLimits) (Customer, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if len([]rune(name)) > maxNameLength {
		return Customer{}, ErrCustomerNameTooLong
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		return Customer{}, err
	}
	phone, err := NewPhone(p.Phone)
	if err != nil {
		return Customer{}, err
	}
	if !limits.Contains(p.PartySize) {
		return Customer{}, fmt.Errorf("%w: party size must be between %d and %d", ErrPartySizeOutOfRange, limits.Min, limits.Max)
	}
	if p.ChildrenCount < 0 {
		return Customer{}, ErrInvalidChildrenCount
	}
	if p.ChildrenCount > p.PartySize {
		return Customer{}, ErrTooManyChildren
	}

	celebrationName := strings.TrimSpace(p.CelebrationName)
	if p.Celebrating && celebrationName == "" {
		return Customer{}, ErrCelebrationNameRequired
	}
	if len([]rune(celebrationName)) > maxNameLength {
		return Customer{}, ErrCelebrationNameTooLong
	}
	if !p.Celebrating {
		celebrationName = ""
	}

	return Customer{
		name:            name,
		email:           email,
		phone:           phone,
		partySize:       p.PartySize,
		childrenCount:   p.ChildrenCount,
		wantsSmoking:    p.WantsSmoking,
		celebrating:     p.Celebrating,
		celebrationName: celebrationName,
	}, nil
}

// ReconstructCustomer rebuilds a customer from persisted, already validated data.
func ReconstructCustomer(p CustomerParams) Customer {
	return Customer{
		name:            p.Name,
		email:           Email{value: p.Email},
		phone:           Phone{value: p.Phone},
		partySize:       p.PartySize,
		childrenCount:   p.ChildrenCount,
		wantsSmoking:    p.WantsSmoking,
		celebrating:     p.Celebrating,
		celebrationName: p.CelebrationName,
	}
}

func (c Customer) Name() string            { return c.name }
func (c Customer) Email() Email            { return c.email }
func (c Customer) Phone() Phone            { return c.phone }
func (c Customer) PartySize() int          { return c.partySize }
func (c Customer) ChildrenCount() int      { return c.childrenCount }
func (c Customer) WantsSmoking() bool      { return c.wantsSmoking }
func (c Customer) Celebrating() bool       { return c.celebrating }
func (c Customer) CelebrationName() string { return c.celebrationName }

func (c Customer) Party() region.Party {
	return region.Party{
		Size:         c.partySize,
		Children:     c.childrenCount,
		WantsSmoking: c.wantsSmoking,
	}
}
