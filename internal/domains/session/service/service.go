package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"staybook/config"
	"staybook/infras/marketplace"
	"staybook/infras/otel"
	avService "staybook/internal/domains/availability/service"
	bModel "staybook/internal/domains/booking/model"
	bService "staybook/internal/domains/booking/service"
	invService "staybook/internal/domains/inventory/service"
	pModel "staybook/internal/domains/property/model"
	"staybook/internal/domains/property/pricing"
	seatService "staybook/internal/domains/seating/service"
	"staybook/internal/domains/session/model/dto"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/shared/timezone"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	EntityName = "session"

	defaultIdleMinutes = 30
	sweepInterval      = time.Minute
)

var (
	ErrSeatingUnsupported = failure.BadRequestFromString("seating is only available for dining properties")
	ErrNotChecked         = failure.BadRequestFromString("check availability before booking")
	ErrMissingProperty    = failure.BadRequestFromString("missing property id")
)

// Session is one shopper's view of one property: the availability query, the displayed
// inventory and, for dining, the seating picker.
type Session interface {
	ID() string
	Property() pModel.Property
	View() dto.SessionResponse
	Check(ctx context.Context, filters avService.Filters) dto.SessionResponse
	Reset() dto.SessionResponse
	SetQuantity(itemID string, quantity int) (invService.RowView, error)
	Reserve(itemID string) (invService.Reservation, error)
	Groups() ([]seatService.Group, error)
	Expand(locationType string) (seatService.Group, error)
	Book(locationType string, req seatService.BookingRequest) (seatService.Navigation, error)
	Draft(itemID string) (bModel.Draft, error)
}

type Registry interface {
	Open(ctx context.Context, propertyID, locale string) (Session, error)
	Get(id string) (Session, error)
	Sweep(now time.Time) int
	Run(ctx context.Context)
}

type registryImpl struct {
	mu          sync.Mutex
	cfg         *config.Config
	marketplace marketplace.Marketplace
	otel        otel.Otel
	idle        time.Duration
	sessions    map[string]*sessionImpl
}

func New(cfg *config.Config, marketplace marketplace.Marketplace, otel otel.Otel) Registry {
	idle := cfg.Booking.SessionIdleMinutes
	if idle <= 0 {
		idle = defaultIdleMinutes
	}

	return &registryImpl{
		cfg:         cfg,
		marketplace: marketplace,
		otel:        otel,
		idle:        time.Duration(idle) * time.Minute,
		sessions:    map[string]*sessionImpl{},
	}
}

func (r *registryImpl) Open(ctx context.Context, propertyID, locale string) (res Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if propertyID == "" {
		return nil, ErrMissingProperty
	}

	if locale == "" {
		locale = r.cfg.App.DefaultLocale
	}

	property, err := r.marketplace.GetProperty(ctx, propertyID, locale)
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to get property")

		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	session := r.newSession(property, locale)

	r.mu.Lock()
	r.sessions[session.id] = session
	r.mu.Unlock()

	scope.SetAttributes(map[string]any{
		"property.id":   property.ID,
		"property.type": string(property.Type),
		"session.id":    session.id,
	})

	log.Info().Str("session_id", session.id).Str("property_id", property.ID).Msg("session opened")

	return session, nil
}

func (r *registryImpl) newSession(property pModel.Property, locale string) *sessionImpl {
	if property.Currency == "" {
		property.Currency = r.cfg.Booking.Currency
	}

	session := &sessionImpl{
		id:        uuid.NewString(),
		locale:    locale,
		property:  property,
		limit:     r.cfg.Booking.MaxQuantity,
		lastSeen:  timezone.Now(),
		query:     avService.New(property.ID, property.Type, locale, r.marketplace, r.otel),
		selection: invService.NewSelection(property.Type, property.Units, r.cfg.Booking.MaxQuantity),
	}

	if property.Type == pModel.TypeDining {
		session.picker = seatService.NewPicker(property.ID, property.Units)
	}

	return session
}

func (r *registryImpl) Get(id string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, failure.NotFound(EntityName)
	}

	session.touch(timezone.Now())

	return session, nil
}

// Sweep drops sessions idle for longer than the configured window and returns how many went.
func (r *registryImpl) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	swept := 0

	for id, session := range r.sessions {
		if now.Sub(session.seen()) > r.idle {
			delete(r.sessions, id)

			swept++
		}
	}

	return swept
}

// Run sweeps idle sessions every minute until ctx is done.
func (r *registryImpl) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if swept := r.Sweep(now); swept > 0 {
				log.Info().Int("swept", swept).Msg("idle sessions removed")
			}
		}
	}
}

type sessionImpl struct {
	mu        sync.Mutex
	id        string
	locale    string
	property  pModel.Property
	limit     int
	lastSeen  time.Time
	applied   uint64
	filters   *avService.Filters
	query     avService.Availability
	selection invService.Selection
	picker    seatService.Picker
}

func (s *sessionImpl) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *sessionImpl) seen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen
}

func (s *sessionImpl) ID() string {
	return s.id
}

func (s *sessionImpl) Property() pModel.Property {
	return s.property
}

// Check runs an availability query and, if its own response settled the query and nothing newer
// was applied since, swaps the displayed inventory for its result (or the property default when
// there is none) together with the filters that produced it.
func (s *sessionImpl) Check(ctx context.Context, filters avService.Filters) dto.SessionResponse {
	if filters.Locale == "" {
		filters.Locale = s.locale
	}

	state, generation := s.query.Check(ctx, filters)

	s.mu.Lock()
	if generation > s.applied {
		s.applied = generation
		s.apply(state, filters)
	}
	s.mu.Unlock()

	return s.View()
}

// apply must be called with s.mu held.
func (s *sessionImpl) apply(state avService.State, filters avService.Filters) {
	units := state.Result
	if units == nil {
		units = s.property.Units
	}

	s.selection.Replace(units)

	if s.picker != nil {
		s.picker.Replace(units)
	}

	if state.Error != "" || !state.HasQueried {
		s.filters = nil
		s.selection.SetNights(1)

		return
	}

	s.filters = &filters

	if s.property.Type == pModel.TypeLodging {
		s.selection.SetNights(pricing.Nights(filters.CheckIn, filters.CheckOut))
	}
}

func (s *sessionImpl) Reset() dto.SessionResponse {
	s.mu.Lock()
	s.applied = s.query.Reset()
	s.apply(avService.State{}, avService.Filters{})
	s.mu.Unlock()

	return s.View()
}

func (s *sessionImpl) View() dto.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := dto.SessionResponse{
		ID:           s.id,
		Locale:       s.locale,
		Availability: s.query.State(),
		Nights:       s.selection.Nights(),
		Items:        s.selection.Rows(),
	}

	res.Property.FromModel(s.property)

	if s.filters != nil {
		filters := *s.filters
		res.Filters = &filters
	}

	if s.picker != nil {
		res.Seating = s.picker.Groups()

		if group, ok := s.picker.Expanded(); ok {
			res.Expanded = &group
		}
	}

	return res
}

func (s *sessionImpl) SetQuantity(itemID string, quantity int) (invService.RowView, error) {
	return s.selection.SetQuantity(itemID, quantity) //nolint:wrapcheck
}

func (s *sessionImpl) Reserve(itemID string) (invService.Reservation, error) {
	return s.selection.Reserve(itemID) //nolint:wrapcheck
}

func (s *sessionImpl) Groups() ([]seatService.Group, error) {
	if s.picker == nil {
		return nil, ErrSeatingUnsupported
	}

	return s.picker.Groups(), nil
}

func (s *sessionImpl) Expand(locationType string) (seatService.Group, error) {
	if s.picker == nil {
		return seatService.Group{}, ErrSeatingUnsupported
	}

	return s.picker.Expand(locationType) //nolint:wrapcheck
}

// Book fills blanks in req from the last successful check before building the navigation.
func (s *sessionImpl) Book(locationType string, req seatService.BookingRequest) (seatService.Navigation, error) {
	if s.picker == nil {
		return seatService.Navigation{}, ErrSeatingUnsupported
	}

	s.mu.Lock()
	if s.filters != nil {
		if req.CheckIn == "" {
			req.CheckIn = s.filters.CheckIn
		}

		if req.Time == "" {
			req.Time = s.filters.Time
		}

		if req.Guests == 0 {
			req.Guests = s.filters.People
		}
	}
	s.mu.Unlock()

	return s.picker.Book(locationType, req) //nolint:wrapcheck
}

// Draft builds the booking payload for the selected quantity of itemID under the last
// successful availability check.
func (s *sessionImpl) Draft(itemID string) (bModel.Draft, error) {
	s.mu.Lock()
	filters := s.filters
	s.mu.Unlock()

	if filters == nil {
		return bModel.Draft{}, ErrNotChecked
	}

	row, ok := s.selection.Row(itemID)
	if !ok {
		return bModel.Draft{}, failure.NotFound(invService.EntityName)
	}

	return bService.NewDraft(s.property, row.Unit, row.Quantity, *filters, s.limit, s.property.Currency) //nolint:wrapcheck
}
