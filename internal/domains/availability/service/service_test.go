package service_test

import (
	"context"
	"errors"
	"staybook/infras/marketplace"
	mpMocks "staybook/infras/marketplace/mocks"
	otelMocks "staybook/infras/otel/mocks"
	"staybook/internal/domains/availability/service"
	pModel "staybook/internal/domains/property/model"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		kind     pModel.Type
		filters  service.Filters
		expected string
	}{
		{name: "lodging ok", kind: pModel.TypeLodging, filters: service.Filters{CheckIn: "2024-01-01", CheckOut: "2024-01-05"}},
		{name: "lodging missing check-in", kind: pModel.TypeLodging, filters: service.Filters{CheckOut: "2024-01-05"}, expected: "missing check-in"},
		{name: "lodging missing check-out", kind: pModel.TypeLodging, filters: service.Filters{CheckIn: "2024-01-01"}, expected: "missing check-out"},
		{name: "lodging equal dates", kind: pModel.TypeLodging, filters: service.Filters{CheckIn: "2024-06-10", CheckOut: "2024-06-10"}, expected: "invalid range"},
		{name: "lodging inverted dates", kind: pModel.TypeLodging, filters: service.Filters{CheckIn: "2024-06-10", CheckOut: "2024-06-01"}, expected: "invalid range"},
		{name: "lodging garbage date", kind: pModel.TypeLodging, filters: service.Filters{CheckIn: "soon", CheckOut: "2024-06-01"}, expected: "invalid date"},
		{name: "dining ok", kind: pModel.TypeDining, filters: service.Filters{CheckIn: "2024-06-10", Time: "19:30"}},
		{name: "dining missing date", kind: pModel.TypeDining, filters: service.Filters{Time: "19:30"}, expected: "missing date"},
		{name: "dining missing time", kind: pModel.TypeDining, filters: service.Filters{CheckIn: "2024-06-10"}, expected: "missing time"},
		{name: "dining bad time", kind: pModel.TypeDining, filters: service.Filters{CheckIn: "2024-06-10", Time: "7pm"}, expected: "invalid time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Validate(tt.kind, tt.filters)

			if tt.expected == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestCheck_ValidationFailureSkipsCollaborator(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mpMocks.NewMockMarketplace(ctrl)

	client.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Times(0)

	query := service.New("p1", pModel.TypeLodging, "en", client, otelMocks.NewOtel())

	state, generation := query.Check(context.Background(), service.Filters{CheckIn: "2024-01-01"})

	assert.Equal(t, service.State{Error: "missing check-out"}, state)
	assert.Equal(t, uint64(1), generation)
	assert.Equal(t, state, query.State())
}

func TestCheck_MissingPropertyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mpMocks.NewMockMarketplace(ctrl)

	client.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Times(0)

	query := service.New("", pModel.TypeLodging, "en", client, otelMocks.NewOtel())

	state, generation := query.Check(context.Background(), service.Filters{})

	assert.Equal(t, service.State{}, state)
	assert.Zero(t, generation)
}

func TestCheck_Lodging(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mpMocks.NewMockMarketplace(ctrl)

	units := []pModel.Unit{{ID: "r1", PricePerNight: 100, TotalAvailable: 2}}

	client.EXPECT().
		CheckAvailability(gomock.Any(), marketplace.AvailabilityRequest{
			PropertyID: "p1",
			CheckIn:    "2024-01-01",
			CheckOut:   "2024-01-05",
			Guests:     3,
			Rooms:      2,
			Locale:     "en",
		}).
		Return(units, nil).
		Times(1)

	query := service.New("p1", pModel.TypeLodging, "en", client, otelMocks.NewOtel())

	state, _ := query.Check(context.Background(), service.Filters{
		CheckIn: "2024-01-01", CheckOut: "2024-01-05", Adults: 2, Children: 1, Rooms: 2, Time: "ignored",
	})

	assert.False(t, state.Loading)
	assert.True(t, state.HasQueried)
	assert.Empty(t, state.Error)
	assert.Equal(t, units, state.Result)
}

func TestCheck_DiningUsesPeopleAndTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mpMocks.NewMockMarketplace(ctrl)

	client.EXPECT().
		CheckAvailability(gomock.Any(), marketplace.AvailabilityRequest{
			PropertyID: "p2",
			CheckIn:    "2024-06-10",
			Time:       "19:30",
			Guests:     4,
			Locale:     "de",
		}).
		Return(nil, nil)

	query := service.New("p2", pModel.TypeDining, "en", client, otelMocks.NewOtel())

	state, _ := query.Check(context.Background(), service.Filters{
		CheckIn: "2024-06-10", CheckOut: "2024-06-12", Time: "19:30", People: 4, Adults: 9, Rooms: 3, Locale: "de",
	})

	assert.True(t, state.HasQueried)
	assert.NotNil(t, state.Result)
	assert.Empty(t, state.Result)
}

func TestCheck_CollaboratorFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "collaborator message", err: failure.Unprocessable("fully booked", nil), expected: "fully booked"},
		{name: "opaque error", err: errors.New("boom"), expected: constant.ResponseErrorCollaboratorFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mpMocks.NewMockMarketplace(ctrl)

			client.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			query := service.New("p1", pModel.TypeLodging, "en", client, otelMocks.NewOtel())

			state, generation := query.Check(context.Background(), service.Filters{CheckIn: "2024-01-01", CheckOut: "2024-01-02"})

			assert.Equal(t, service.State{Error: tt.expected}, state)
			assert.Equal(t, uint64(1), generation)
		})
	}
}

func TestCheck_NewTriggerClearsPreviousResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mpMocks.NewMockMarketplace(ctrl)

	client.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return([]pModel.Unit{{ID: "r1"}}, nil)

	query := service.New("p1", pModel.TypeLodging, "en", client, otelMocks.NewOtel())

	first, _ := query.Check(context.Background(), service.Filters{CheckIn: "2024-01-01", CheckOut: "2024-01-02"})
	require.True(t, first.HasQueried)

	second, _ := query.Check(context.Background(), service.Filters{CheckIn: "2024-01-03", CheckOut: "2024-01-02"})

	assert.Equal(t, service.State{Error: "invalid range"}, second)
}

func TestReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mpMocks.NewMockMarketplace(ctrl)

	client.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return([]pModel.Unit{{ID: "r1"}}, nil)

	query := service.New("p1", pModel.TypeLodging, "en", client, otelMocks.NewOtel())
	query.Check(context.Background(), service.Filters{CheckIn: "2024-01-01", CheckOut: "2024-01-02"})

	assert.Equal(t, uint64(2), query.Reset())
	assert.Equal(t, service.State{}, query.State())
}

type pendingCall struct {
	req   marketplace.AvailabilityRequest
	reply chan []pModel.Unit
}

// gatedChecker blocks every call until the test answers it.
type gatedChecker struct {
	calls chan pendingCall
}

func (g *gatedChecker) CheckAvailability(_ context.Context, req marketplace.AvailabilityRequest) ([]pModel.Unit, error) {
	call := pendingCall{req: req, reply: make(chan []pModel.Unit)}
	g.calls <- call

	return <-call.reply, nil
}

func nextCall(t *testing.T, calls chan pendingCall) pendingCall {
	t.Helper()

	select {
	case call := <-calls:
		return call
	case <-time.After(time.Second):
		t.Fatal("collaborator was not called")
	}

	return pendingCall{}
}

type checkOutcome struct {
	state      service.State
	generation uint64
}

func checkAsync(query service.Availability, filters service.Filters) chan checkOutcome {
	done := make(chan checkOutcome, 1)

	go func() {
		state, generation := query.Check(context.Background(), filters)
		done <- checkOutcome{state: state, generation: generation}
	}()

	return done
}

func TestCheck_StaleResponseIsDiscarded(t *testing.T) {
	checker := &gatedChecker{calls: make(chan pendingCall)}
	query := service.New("p1", pModel.TypeLodging, "en", checker, otelMocks.NewOtel())

	firstDone := checkAsync(query, service.Filters{CheckIn: "2024-01-01", CheckOut: "2024-01-02"})
	first := nextCall(t, checker.calls)

	secondDone := checkAsync(query, service.Filters{CheckIn: "2024-02-01", CheckOut: "2024-02-03"})
	second := nextCall(t, checker.calls)
	assert.Equal(t, "2024-02-01", second.req.CheckIn)

	// the older response lands first and must neither apply nor clear loading
	first.reply <- []pModel.Unit{{ID: "stale"}}
	stale := <-firstDone

	assert.Zero(t, stale.generation)
	assert.Equal(t, service.State{Loading: true}, query.State())

	second.reply <- []pModel.Unit{{ID: "fresh"}}
	fresh := <-secondDone

	assert.Equal(t, uint64(2), fresh.generation)
	assert.Equal(t, service.State{Result: []pModel.Unit{{ID: "fresh"}}, HasQueried: true}, query.State())
}

func TestCheck_ResetInvalidatesInFlight(t *testing.T) {
	checker := &gatedChecker{calls: make(chan pendingCall)}
	query := service.New("p1", pModel.TypeLodging, "en", checker, otelMocks.NewOtel())

	done := checkAsync(query, service.Filters{CheckIn: "2024-01-01", CheckOut: "2024-01-02"})
	call := nextCall(t, checker.calls)

	query.Reset()

	call.reply <- []pModel.Unit{{ID: "late"}}
	late := <-done

	assert.Zero(t, late.generation)
	assert.Equal(t, service.State{}, query.State())
}
