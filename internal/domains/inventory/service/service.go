package service

import (
	"fmt"
	pModel "staybook/internal/domains/property/model"
	"staybook/internal/domains/property/pricing"
	"staybook/shared/failure"
	"sync"
)

const (
	EntityName = "inventory unit"

	messageNothingSelected = "select a quantity before reserving"
)

// Reservation is what a row hands to the submission flow.
type Reservation struct {
	UnitID    string  `json:"unit_id"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// RowView is the rendered state of one row, with every price derived at read time.
type RowView struct {
	Unit         pModel.Unit `json:"unit"`
	Quantity     int         `json:"selected_quantity"`
	MaxQuantity  int         `json:"max_quantity"`
	UnitPrice    float64     `json:"unit_price"`
	TotalForStay float64     `json:"total_for_stay"`
	LineTotal    float64     `json:"line_total"`
}

// Row holds the chosen quantity of a single unit.
type Row struct {
	kind     pModel.Type
	unit     pModel.Unit
	nights   int
	limit    int
	quantity int
}

func NewRow(kind pModel.Type, unit pModel.Unit, nights, limit int) *Row {
	return &Row{kind: kind, unit: unit, nights: max(nights, 1), limit: limit}
}

func (r *Row) Unit() pModel.Unit {
	return r.unit
}

func (r *Row) Quantity() int {
	return r.quantity
}

func (r *Row) MaxQuantity() int {
	return pricing.MaxSelectable(r.unit.TotalAvailable, r.limit)
}

func (r *Row) UnitPrice() float64 {
	return pricing.UnitPrice(r.kind, r.unit)
}

func (r *Row) TotalForStay() float64 {
	return pricing.TotalForStay(r.kind, r.unit, r.nights)
}

func (r *Row) LineTotal(quantity int) float64 {
	return pricing.LineTotal(r.kind, r.unit, r.nights, quantity)
}

// SetQuantity accepts 0..MaxQuantity.
func (r *Row) SetQuantity(quantity int) error {
	if upper := r.MaxQuantity(); quantity < 0 || quantity > upper {
		return failure.BadRequestFromString(fmt.Sprintf("quantity must be between 0 and %d", upper))
	}

	r.quantity = quantity

	return nil
}

func (r *Row) Reserve() (Reservation, error) {
	if r.quantity <= 0 {
		return Reservation{}, failure.BadRequestFromString(messageNothingSelected)
	}

	return Reservation{
		UnitID:    r.unit.ID,
		Quantity:  r.quantity,
		LineTotal: r.LineTotal(r.quantity),
	}, nil
}

func (r *Row) View() RowView {
	return RowView{
		Unit:         r.unit,
		Quantity:     r.quantity,
		MaxQuantity:  r.MaxQuantity(),
		UnitPrice:    r.UnitPrice(),
		TotalForStay: r.TotalForStay(),
		LineTotal:    r.LineTotal(r.quantity),
	}
}

// Selection is the ordered set of rows for the inventory currently on display.
type Selection interface {
	Replace(units []pModel.Unit)
	SetNights(nights int)
	Nights() int
	SetQuantity(unitID string, quantity int) (RowView, error)
	Reserve(unitID string) (Reservation, error)
	Row(unitID string) (RowView, bool)
	Rows() []RowView
}

type selectionImpl struct {
	mu     sync.Mutex
	kind   pModel.Type
	limit  int
	nights int
	rows   []*Row
	index  map[string]*Row
}

func NewSelection(kind pModel.Type, units []pModel.Unit, limit int) Selection {
	s := &selectionImpl{kind: kind, limit: limit, nights: 1}
	s.Replace(units)

	return s
}

// Replace rebuilds rows for a new inventory snapshot. Units that survive keep their
// quantity, clamped to the new maximum.
func (s *selectionImpl) Replace(units []pModel.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.index

	s.rows = make([]*Row, 0, len(units))
	s.index = make(map[string]*Row, len(units))

	for _, unit := range units {
		if _, dup := s.index[unit.ID]; dup {
			continue
		}

		row := NewRow(s.kind, unit, s.nights, s.limit)
		if old, ok := previous[unit.ID]; ok {
			row.quantity = min(old.quantity, row.MaxQuantity())
		}

		s.rows = append(s.rows, row)
		s.index[unit.ID] = row
	}
}

func (s *selectionImpl) SetNights(nights int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nights = max(nights, 1)

	for _, row := range s.rows {
		row.nights = s.nights
	}
}

func (s *selectionImpl) Nights() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nights
}

func (s *selectionImpl) SetQuantity(unitID string, quantity int) (RowView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.index[unitID]
	if !ok {
		return RowView{}, failure.NotFound(EntityName)
	}

	if err := row.SetQuantity(quantity); err != nil {
		return row.View(), err
	}

	return row.View(), nil
}

func (s *selectionImpl) Reserve(unitID string) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.index[unitID]
	if !ok {
		return Reservation{}, failure.NotFound(EntityName)
	}

	return row.Reserve()
}

func (s *selectionImpl) Row(unitID string) (RowView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.index[unitID]
	if !ok {
		return RowView{}, false
	}

	return row.View(), true
}

func (s *selectionImpl) Rows() []RowView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]RowView, 0, len(s.rows))
	for _, row := range s.rows {
		views = append(views, row.View())
	}

	return views
}
