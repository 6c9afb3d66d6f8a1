package region

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRegionName      = errors.New("region name cannot be empty")
	ErrInvalidTableCount    = errors.New("region must have at least one table")
	ErrInvalidTableCapacity = errors.New("table capacity must be at least one")
)

type Region struct {
	id               uuid.UUID
	name             string
	displayName      string
	capacityPerTable int
	tableCount       int
	allowChildren    bool
	allowSmoking     bool
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

type Params struct {
	ID               uuid.UUID
	Name             string
	DisplayName      string
	CapacityPerTable int
	TableCount       int
	AllowChildren    bool
	AllowSmoking     bool
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewRegion(p Params) (*Region, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyRegionName
	}
	if p.TableCount < 1 {
		return nil, ErrInvalidTableCount
	}
	if p.CapacityPerTable < 1 {
		return nil, ErrInvalidTableCapacity
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	displayName := strings.TrimSpace(p.DisplayName)
	if displayName == "" {
		displayName = name
	}

	return &Region{
		id:               id,
		name:             name,
		displayName:      displayName,
		capacityPerTable: p.CapacityPerTable,
		tableCount:       p.TableCount,
		allowChildren:    p.AllowChildren,
		allowSmoking:     p.AllowSmoking,
		isActive:         p.IsActive,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (r *Region) ID() uuid.UUID         { return r.id }
func (r *Region) Name() string          { return r.name }
func (r *Region) DisplayName() string   { return r.displayName }
func (r *Region) CapacityPerTable() int { return r.capacityPerTable }
func (r *Region) TableCount() int       { return r.tableCount }
func (r *Region) AllowChildren() bool   { return r.allowChildren }
func (r *Region) AllowSmoking() bool    { return r.allowSmoking }
func (r *Region) IsActive() bool        { return r.isActive }
func (r *Region) CreatedAt() time.Time  { return r.createdAt }
func (r *Region) UpdatedAt() time.Time  { return r.updatedAt }

// TotalSeats is the number of guests the region seats when every table is full.
func (r *Region) TotalSeats() int {
	return r.tableCount * r.capacityPerTable
}

// SortByName orders regions by their stable name key, in place.
func SortByName(regions []*Region) {
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].name < regions[j].name
	})
}
