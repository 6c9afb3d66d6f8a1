package region

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSmokingPolicy = errors.New("unknown smoking policy")

// SmokingPolicy decides how a party's smoking preference is matched against
// a region's smoking flag.
type SmokingPolicy string

const (
	// SmokingExact seats smokers only in smoking regions and non-smokers only
	// in non-smoking regions.
	SmokingExact SmokingPolicy = "exact"
	// SmokingAllowed only keeps smokers out of non-smoking regions.
	SmokingAllowed SmokingPolicy = "allowed"
)

func ParseSmokingPolicy(s string) (SmokingPolicy, error) {
	switch SmokingPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case SmokingExact:
		return SmokingExact, nil
	case SmokingAllowed:
		return SmokingAllowed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSmokingPolicy, s)
	}
}

type ReasonCode string

const (
	ReasonInactive           ReasonCode = "REGION_INACTIVE"
	ReasonCapacityExceeded   ReasonCode = "CAPACITY_EXCEEDED"
	ReasonChildrenNotAllowed ReasonCode = "CHILDREN_NOT_ALLOWED"
	ReasonSmokingNotAllowed  ReasonCode = "SMOKING_NOT_ALLOWED"
	ReasonSmokingRegionOnly  ReasonCode = "SMOKING_REGION_ONLY"
)

// Ineligibility explains why a party cannot be seated in a region.
type Ineligibility struct {
	Code    ReasonCode
	Message string
}

func (i *Ineligibility) Error() string {
	return i.Message
}

// Party is the composition a seating decision is made for.
type Party struct {
	Size         int
	Children     int
	WantsSmoking bool
}

func (p Party) HasChildren() bool {
	return p.Children > 0
}

// Eligibility applies the region's seating rules to p. It returns nil when the
// party may be seated; rules are checked in a fixed order and the first
// failing rule is reported.
func (r *Region) Eligibility(p Party, policy SmokingPolicy) *Ineligibility {
	if !r.isActive {
		return &Ineligibility{
			Code:    ReasonInactive,
			Message: fmt.Sprintf("%s is currently not available.", r.displayName),
		}
	}
	if p.Size > r.capacityPerTable {
		return &Ineligibility{
			Code: ReasonCapacityExceeded,
			Message: fmt.Sprintf("%s can accommodate maximum %d people per table. Your party size is %d.",
				r.displayName, r.capacityPerTable, p.Size),
		}
	}
	if p.HasChildren() && !r.allowChildren {
		return &Ineligibility{
			Code:    ReasonChildrenNotAllowed,
			Message: fmt.Sprintf("%s does not allow children.", r.displayName),
		}
	}
	if p.WantsSmoking && !r.allowSmoking {
		return &Ineligibility{
			Code:    ReasonSmokingNotAllowed,
			Message: fmt.Sprintf("%s does not allow smoking. Please choose a smoking area.", r.displayName),
		}
	}
	if policy != SmokingAllowed && !p.WantsSmoking && r.allowSmoking {
		return &Ineligibility{
			Code:    ReasonSmokingRegionOnly,
			Message: fmt.Sprintf("%s is reserved for smoking guests.", r.displayName),
		}
	}
	return nil
}

// FilterEligible keeps, in input order, the regions that can seat p.
func FilterEligible(regions []*Region, p Party, policy SmokingPolicy) []*Region {
	out := make([]*Region, 0, len(regions))
	for _, r := range regions {
		if r.Eligibility(p, policy) == nil {
			out = append(out, r)
		}
	}
	return out
}
