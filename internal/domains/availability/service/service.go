package service

import (
	"context"
	"errors"
	"slices"
	"staybook/infras/marketplace"
	"staybook/infras/otel"
	pModel "staybook/internal/domains/property/model"
	"staybook/internal/domains/property/pricing"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	MessageMissingCheckIn  = "missing check-in"
	MessageMissingCheckOut = "missing check-out"
	MessageInvalidRange    = "invalid range"
	MessageInvalidDate     = "invalid date"
	MessageMissingDate     = "missing date"
	MessageMissingTime     = "missing time"
	MessageInvalidTime     = "invalid time"
)

// Filters are the user inputs of one availability check.
type Filters struct {
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout,omitempty"`
	Time     string `json:"time,omitempty"`
	Adults   int    `json:"adults,omitempty"`
	Children int    `json:"children,omitempty"`
	Rooms    int    `json:"rooms,omitempty"`
	People   int    `json:"people,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

// Guests is adults+children for lodging and the party size for dining.
func (f Filters) Guests(kind pModel.Type) int {
	if kind == pModel.TypeDining {
		return f.People
	}

	return f.Adults + f.Children
}

// State is what the availability view renders. A nil Result means "show the default inventory".
type State struct {
	Loading    bool          `json:"loading"`
	Error      string        `json:"error,omitempty"`
	Result     []pModel.Unit `json:"result"`
	HasQueried bool          `json:"has_queried"`
}

func (s State) clone() State {
	if s.Result != nil {
		s.Result = slices.Clone(s.Result)
	}

	return s
}

type Checker interface {
	CheckAvailability(ctx context.Context, req marketplace.AvailabilityRequest) ([]pModel.Unit, error)
}

// Availability runs one validated lookup per explicit trigger. Every trigger takes a generation
// token; a response is applied only while its token is still the latest one.
//
// Check returns the state after the call together with the generation that call settled, or 0
// when its response was stale and left the state untouched. Reset returns the new generation.
type Availability interface {
	Check(ctx context.Context, filters Filters) (State, uint64)
	Reset() uint64
	State() State
}

type queryImpl struct {
	mu         sync.Mutex
	propertyID string
	kind       pModel.Type
	locale     string
	generation uint64
	state      State
	client     Checker
	otel       otel.Otel
}

func New(propertyID string, kind pModel.Type, locale string, client Checker, otel otel.Otel) Availability {
	return &queryImpl{
		propertyID: propertyID,
		kind:       kind,
		locale:     locale,
		client:     client,
		otel:       otel,
	}
}

func (q *queryImpl) Check(ctx context.Context, filters Filters) (State, uint64) {
	ctx, scope := q.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()

	if q.propertyID == "" {
		log.Warn().Msg("availability check without a property id, ignoring")

		return q.State(), 0
	}

	q.mu.Lock()
	q.generation++
	token := q.generation

	if err := Validate(q.kind, filters); err != nil {
		q.state = State{Error: err.Error()}
		snapshot := q.state.clone()
		q.mu.Unlock()

		scope.TraceError(err)

		return snapshot, token
	}

	q.state = State{Loading: true}
	q.mu.Unlock()

	req := marketplace.AvailabilityRequest{
		PropertyID: q.propertyID,
		CheckIn:    filters.CheckIn,
		Guests:     filters.Guests(q.kind),
		Locale:     filters.Locale,
	}

	if req.Locale == "" {
		req.Locale = q.locale
	}

	if q.kind == pModel.TypeDining {
		req.Time = filters.Time
	} else {
		req.CheckOut = filters.CheckOut
		req.Rooms = filters.Rooms
	}

	scope.SetAttributes(map[string]any{
		"property.id":             q.propertyID,
		"availability.guests":     req.Guests,
		"availability.rooms":      req.Rooms,
		"availability.generation": token,
	})

	units, err := q.client.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
	}

	return q.settle(token, units, err)
}

// settle applies a response if token is still current; stale responses leave state untouched.
func (q *queryImpl) settle(token uint64, units []pModel.Unit, err error) (State, uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if token != q.generation {
		log.Debug().
			Uint64("token", token).
			Uint64("latest", q.generation).
			Str("property_id", q.propertyID).
			Msg("discarding stale availability response")

		return q.state.clone(), 0
	}

	q.state.Loading = false

	if err != nil {
		log.Error().Err(err).Str("property_id", q.propertyID).Msg("availability check failed")

		q.state.Error = collaboratorMessage(err)
		q.state.Result = nil

		return q.state.clone(), token
	}

	if units == nil {
		units = []pModel.Unit{}
	}

	q.state.Result = slices.Clone(units)
	q.state.HasQueried = true

	return q.state.clone(), token
}

func (q *queryImpl) Reset() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.generation++
	q.state = State{}

	return q.generation
}

func (q *queryImpl) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.state.clone()
}

// Validate checks filters against the date rules of kind.
func Validate(kind pModel.Type, filters Filters) error {
	if kind == pModel.TypeDining {
		return validateDining(filters)
	}

	return validateLodging(filters)
}

func validateLodging(filters Filters) error {
	if filters.CheckIn == "" {
		return failure.BadRequestFromString(MessageMissingCheckIn)
	}

	if filters.CheckOut == "" {
		return failure.BadRequestFromString(MessageMissingCheckOut)
	}

	checkIn, ok := pricing.ParseDate(filters.CheckIn)
	if !ok {
		return failure.BadRequestFromString(MessageInvalidDate)
	}

	checkOut, ok := pricing.ParseDate(filters.CheckOut)
	if !ok {
		return failure.BadRequestFromString(MessageInvalidDate)
	}

	if !checkIn.Before(checkOut) {
		return failure.BadRequestFromString(MessageInvalidRange)
	}

	return nil
}

func validateDining(filters Filters) error {
	if filters.CheckIn == "" {
		return failure.BadRequestFromString(MessageMissingDate)
	}

	if _, ok := pricing.ParseDate(filters.CheckIn); !ok {
		return failure.BadRequestFromString(MessageInvalidDate)
	}

	if filters.Time == "" {
		return failure.BadRequestFromString(MessageMissingTime)
	}

	if _, err := time.Parse(constant.ClockFormat, filters.Time); err != nil {
		return failure.BadRequestFromString(MessageInvalidTime)
	}

	return nil
}

func collaboratorMessage(err error) string {
	var fail *failure.Failure
	if errors.As(err, &fail) && fail.Message != "" {
		return fail.Message
	}

	return constant.ResponseErrorCollaboratorFallback
}
