package service_test

import (
	"net/http"
	pModel "staybook/internal/domains/property/model"
	"staybook/internal/domains/seating/service"
	"staybook/shared/failure"
	"staybook/shared/timezone"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fee(v float64) *float64 {
	return &v
}

func tables() []pModel.Unit {
	return []pModel.Unit{
		{ID: "t1", LocationType: "patio", Capacity: 2},
		{ID: "t2", LocationType: "hall", Capacity: 4, ReservationFee: fee(10)},
		{ID: "t3", LocationType: "patio", Capacity: 6, ReservationFee: fee(30)},
		{ID: "t4", LocationType: "hall", Capacity: 8, ReservationFee: fee(50)},
	}
}

func TestGroupUnits(t *testing.T) {
	groups := service.GroupUnits(tables())

	require.Len(t, groups, 2)

	assert.Equal(t, service.Group{
		LocationType: "patio",
		Count:        2,
		Capacities:   []int{2, 6},
		BasePrice:    0,
		IDs:          []string{"t1", "t3"},
	}, groups[0])

	assert.Equal(t, service.Group{
		LocationType: "hall",
		Count:        2,
		Capacities:   []int{4, 8},
		BasePrice:    10,
		IDs:          []string{"t2", "t4"},
	}, groups[1])
}

func TestGroupUnits_Empty(t *testing.T) {
	assert.Empty(t, service.GroupUnits(nil))
}

func TestBook(t *testing.T) {
	groups := service.GroupUnits(tables())

	nav, err := service.Book("p9", groups[0], service.BookingRequest{Guests: 4, CheckIn: "2024-06-10", Time: "19:30"})

	require.NoError(t, err)
	assert.Equal(t, service.Navigation{
		PropertyID: "p9",
		ItemID:     "t1",
		ItemType:   pModel.ItemTypeTable,
		Guests:     4,
		CheckIn:    "2024-06-10",
		Time:       "19:30",
	}, nav)
}

func TestBook_DefaultsToToday(t *testing.T) {
	groups := service.GroupUnits(tables())

	nav, err := service.Book("p9", groups[1], service.BookingRequest{Guests: 2, Time: "20:00"})

	require.NoError(t, err)
	assert.Equal(t, "t2", nav.ItemID)
	assert.Equal(t, timezone.Today(), nav.CheckIn)
}

func TestBook_EmptyGroup(t *testing.T) {
	_, err := service.Book("p9", service.Group{LocationType: "roof"}, service.BookingRequest{})

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestPicker_SingleSelect(t *testing.T) {
	picker := service.NewPicker("p9", tables())

	_, ok := picker.Expanded()
	assert.False(t, ok)

	group, err := picker.Expand("patio")
	require.NoError(t, err)
	assert.True(t, group.Expanded)

	_, err = picker.Expand("hall")
	require.NoError(t, err)

	groups := picker.Groups()
	assert.False(t, groups[0].Expanded)
	assert.True(t, groups[1].Expanded)

	expanded, ok := picker.Expanded()
	assert.True(t, ok)
	assert.Equal(t, "hall", expanded.LocationType)

	_, err = picker.Expand("roof")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestPicker_ReplaceDropsMissingExpansion(t *testing.T) {
	picker := service.NewPicker("p9", tables())

	_, err := picker.Expand("hall")
	require.NoError(t, err)

	picker.Replace([]pModel.Unit{{ID: "t1", LocationType: "patio", Capacity: 2}})

	_, ok := picker.Expanded()
	assert.False(t, ok)
	assert.Len(t, picker.Groups(), 1)
}

func TestPicker_ExpandUnlabelledGroup(t *testing.T) {
	picker := service.NewPicker("p9", []pModel.Unit{
		{ID: "t1", Capacity: 2},
		{ID: "t2", LocationType: "patio", Capacity: 4},
	})

	_, ok := picker.Expanded()
	assert.False(t, ok)

	group, err := picker.Expand("")
	require.NoError(t, err)
	assert.True(t, group.Expanded)

	expanded, ok := picker.Expanded()
	require.True(t, ok)
	assert.Empty(t, expanded.LocationType)
	assert.Equal(t, []string{"t1"}, expanded.IDs)

	groups := picker.Groups()
	require.Len(t, groups, 2)
	assert.True(t, groups[0].Expanded)
	assert.False(t, groups[1].Expanded)

	picker.Replace([]pModel.Unit{{ID: "t2", LocationType: "patio", Capacity: 4}})

	_, ok = picker.Expanded()
	assert.False(t, ok)
}

func TestPicker_Book(t *testing.T) {
	picker := service.NewPicker("p9", tables())

	nav, err := picker.Book("hall", service.BookingRequest{Guests: 3, CheckIn: "2024-06-10", Time: "18:00"})

	require.NoError(t, err)
	assert.Equal(t, "t2", nav.ItemID)

	_, err = picker.Book("roof", service.BookingRequest{})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
