package service_test

import (
	"net/http"
	"staybook/internal/domains/inventory/service"
	pModel "staybook/internal/domains/property/model"
	"staybook/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fee(v float64) *float64 {
	return &v
}

func TestRow_Derivations(t *testing.T) {
	room := pModel.Unit{ID: "r1", PricePerNight: 100, TotalAvailable: 5}

	row := service.NewRow(pModel.TypeLodging, room, 3, 10)

	assert.Equal(t, 0, row.Quantity())
	assert.Equal(t, 100.0, row.UnitPrice())
	assert.Equal(t, 300.0, row.TotalForStay())
	assert.Equal(t, 600.0, row.LineTotal(2))
	assert.Equal(t, 5, row.MaxQuantity())
}

func TestRow_DiningIgnoresNights(t *testing.T) {
	table := pModel.Unit{ID: "t1", ReservationFee: fee(25), TotalAvailable: 4}
	free := pModel.Unit{ID: "t2", TotalAvailable: 4}

	row := service.NewRow(pModel.TypeDining, table, 7, 10)

	assert.Equal(t, 25.0, row.TotalForStay())
	assert.Equal(t, 50.0, row.LineTotal(2))
	assert.Equal(t, 0.0, service.NewRow(pModel.TypeDining, free, 7, 10).TotalForStay())
}

func TestRow_SetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		available int
		limit     int
		quantity  int
		wantErr   bool
	}{
		{name: "zero is allowed", available: 5, limit: 10, quantity: 0},
		{name: "within inventory", available: 5, limit: 10, quantity: 5},
		{name: "above inventory", available: 5, limit: 10, quantity: 6, wantErr: true},
		{name: "capped at ten", available: 25, limit: 0, quantity: 11, wantErr: true},
		{name: "ten when deep inventory", available: 25, limit: 0, quantity: 10},
		{name: "negative", available: 5, limit: 10, quantity: -1, wantErr: true},
		{name: "custom cap", available: 25, limit: 4, quantity: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := service.NewRow(pModel.TypeLodging, pModel.Unit{ID: "r1", TotalAvailable: tt.available}, 1, tt.limit)

			err := row.SetQuantity(tt.quantity)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, 0, row.Quantity())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.quantity, row.Quantity())
		})
	}
}

func TestRow_Reserve(t *testing.T) {
	row := service.NewRow(pModel.TypeLodging, pModel.Unit{ID: "r1", PricePerNight: 100, TotalAvailable: 5}, 3, 10)

	_, err := row.Reserve()
	require.Error(t, err)

	require.NoError(t, row.SetQuantity(2))

	reservation, err := row.Reserve()

	require.NoError(t, err)
	assert.Equal(t, service.Reservation{UnitID: "r1", Quantity: 2, LineTotal: 600}, reservation)
}

func TestSelection_RowsAreIndependent(t *testing.T) {
	selection := service.NewSelection(pModel.TypeLodging, []pModel.Unit{
		{ID: "r1", PricePerNight: 100, TotalAvailable: 5},
		{ID: "r2", PricePerNight: 80, TotalAvailable: 5},
	}, 10)

	_, err := selection.SetQuantity("r1", 3)
	require.NoError(t, err)

	rows := selection.Rows()

	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.Equal(t, 0, rows[1].Quantity)
	assert.Equal(t, 0.0, rows[1].LineTotal)
}

func TestSelection_SetNightsRederives(t *testing.T) {
	selection := service.NewSelection(pModel.TypeLodging, []pModel.Unit{{ID: "r1", PricePerNight: 100, TotalAvailable: 5}}, 10)

	_, err := selection.SetQuantity("r1", 2)
	require.NoError(t, err)

	selection.SetNights(4)

	row, ok := selection.Row("r1")

	require.True(t, ok)
	assert.Equal(t, 4, selection.Nights())
	assert.Equal(t, 400.0, row.TotalForStay)
	assert.Equal(t, 800.0, row.LineTotal)
}

func TestSelection_Replace(t *testing.T) {
	selection := service.NewSelection(pModel.TypeLodging, []pModel.Unit{
		{ID: "r1", TotalAvailable: 5},
		{ID: "r2", TotalAvailable: 5},
	}, 10)

	_, err := selection.SetQuantity("r1", 4)
	require.NoError(t, err)
	_, err = selection.SetQuantity("r2", 1)
	require.NoError(t, err)

	selection.Replace([]pModel.Unit{
		{ID: "r1", TotalAvailable: 2},
		{ID: "r3", TotalAvailable: 1},
		{ID: "r3", TotalAvailable: 9},
	})

	rows := selection.Rows()

	require.Len(t, rows, 2)
	assert.Equal(t, "r1", rows[0].Unit.ID)
	assert.Equal(t, 2, rows[0].Quantity)
	assert.Equal(t, "r3", rows[1].Unit.ID)
	assert.Equal(t, 0, rows[1].Quantity)

	_, ok := selection.Row("r2")
	assert.False(t, ok)
}

func TestSelection_UnknownUnit(t *testing.T) {
	selection := service.NewSelection(pModel.TypeLodging, nil, 10)

	_, err := selection.SetQuantity("nope", 1)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = selection.Reserve("nope")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
