package service

import (
	"slices"
	pModel "staybook/internal/domains/property/model"
	"staybook/shared/failure"
	"staybook/shared/timezone"
	"sync"
)

const EntityName = "seating group"

// Group is one card per location type; the booking targets the category, not a numbered table.
type Group struct {
	LocationType string   `json:"location_type"`
	Count        int      `json:"count"`
	Capacities   []int    `json:"capacities"`
	BasePrice    float64  `json:"base_price"`
	IDs          []string `json:"ids"`
	Expanded     bool     `json:"expanded"`
}

// GroupUnits keys units by location type in first-seen order. BasePrice is the first-seen
// reservation fee of the group (0 when absent).
func GroupUnits(units []pModel.Unit) []Group {
	groups := make([]Group, 0)
	position := make(map[string]int)

	for _, unit := range units {
		idx, ok := position[unit.LocationType]
		if !ok {
			group := Group{LocationType: unit.LocationType, Capacities: []int{}, IDs: []string{}}
			if unit.ReservationFee != nil {
				group.BasePrice = *unit.ReservationFee
			}

			groups = append(groups, group)
			idx = len(groups) - 1
			position[unit.LocationType] = idx
		}

		groups[idx].Count++
		groups[idx].Capacities = append(groups[idx].Capacities, unit.Capacity)
		groups[idx].IDs = append(groups[idx].IDs, unit.ID)
	}

	return groups
}

// BookingRequest carries the inputs of a table booking; an empty CheckIn means today.
type BookingRequest struct {
	Guests  int    `json:"guests"  validate:"omitempty,min=1"`
	CheckIn string `json:"checkin" validate:"omitempty,isodate"`
	Time    string `json:"time"    validate:"omitempty,clock"`
}

// Navigation is the payload handed to the booking page.
type Navigation struct {
	PropertyID string          `json:"property_id"`
	ItemID     string          `json:"item_id"`
	ItemType   pModel.ItemType `json:"item_type"`
	Guests     int             `json:"guests"`
	CheckIn    string          `json:"checkin"`
	Time       string          `json:"time"`
}

// Book targets the first table of group.
func Book(propertyID string, group Group, req BookingRequest) (Navigation, error) {
	if len(group.IDs) == 0 {
		return Navigation{}, failure.NotFound(EntityName)
	}

	checkIn := req.CheckIn
	if checkIn == "" {
		checkIn = timezone.Today()
	}

	return Navigation{
		PropertyID: propertyID,
		ItemID:     group.IDs[0],
		ItemType:   pModel.ItemTypeTable,
		Guests:     req.Guests,
		CheckIn:    checkIn,
		Time:       req.Time,
	}, nil
}

// Picker is the single-select group list of a dining property.
type Picker interface {
	Replace(units []pModel.Unit)
	Groups() []Group
	Expand(locationType string) (Group, error)
	Expanded() (Group, bool)
	Book(locationType string, req BookingRequest) (Navigation, error)
}

type pickerImpl struct {
	mu         sync.Mutex
	propertyID string
	groups     []Group
	expanded   string
	isExpanded bool
}

func NewPicker(propertyID string, units []pModel.Unit) Picker {
	return &pickerImpl{propertyID: propertyID, groups: GroupUnits(units)}
}

// Replace regroups a new snapshot; the expanded group stays expanded only if it still exists.
func (p *pickerImpl) Replace(units []pModel.Unit) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.groups = GroupUnits(units)

	if _, ok := p.find(p.expanded); !ok {
		p.expanded = ""
		p.isExpanded = false
	}
}

func (p *pickerImpl) Groups() []Group {
	p.mu.Lock()
	defer p.mu.Unlock()

	groups := make([]Group, 0, len(p.groups))
	for _, group := range p.groups {
		groups = append(groups, p.view(group))
	}

	return groups
}

// Expand makes locationType the only expanded group.
func (p *pickerImpl) Expand(locationType string) (Group, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	group, ok := p.find(locationType)
	if !ok {
		return Group{}, failure.NotFound(EntityName)
	}

	p.expanded = locationType
	p.isExpanded = true

	return p.view(group), nil
}

func (p *pickerImpl) Expanded() (Group, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isExpanded {
		return Group{}, false
	}

	group, ok := p.find(p.expanded)
	if !ok {
		return Group{}, false
	}

	return p.view(group), true
}

func (p *pickerImpl) Book(locationType string, req BookingRequest) (Navigation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	group, ok := p.find(locationType)
	if !ok {
		return Navigation{}, failure.NotFound(EntityName)
	}

	return Book(p.propertyID, group, req)
}

func (p *pickerImpl) find(locationType string) (Group, bool) {
	for _, group := range p.groups {
		if group.LocationType == locationType {
			return group, true
		}
	}

	return Group{}, false
}

func (p *pickerImpl) view(group Group) Group {
	group.Expanded = p.isExpanded && group.LocationType == p.expanded
	group.Capacities = slices.Clone(group.Capacities)
	group.IDs = slices.Clone(group.IDs)

	return group
}
