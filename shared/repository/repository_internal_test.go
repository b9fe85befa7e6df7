package repository

import (
	"staybook/infras/otel/mocks"
	"staybook/shared/dto"
	"staybook/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID       string `db:"id"`
	DeviceID string `db:"device_id"`
	Note     string `db:"-"`
	Label    string
	model.Metadata
}

func newRowRepository() Repository[row] {
	return NewRepository[row]("row", "rows", "id", nil, mocks.NewOtel())
}

func TestColumnsOf(t *testing.T) {
	repo := newRowRepository()

	assert.Equal(t, []string{"id", "device_id", "created_at", "modified_at"}, repo.columns)
}

func TestUpsertQuery(t *testing.T) {
	repo := newRowRepository()

	assert.Equal(t,
		"INSERT INTO rows (id, device_id, created_at, modified_at) VALUES (:id, :device_id, :created_at, :modified_at) "+
			"ON CONFLICT (id) DO UPDATE SET device_id = EXCLUDED.device_id, modified_at = EXCLUDED.modified_at",
		repo.upsertQuery([]string{"created_at"}),
	)

	assert.Contains(t,
		repo.upsertQuery([]string{"device_id", "created_at", "modified_at"}),
		"ON CONFLICT (id) DO NOTHING",
	)
}

func TestSelectQuery(t *testing.T) {
	repo := newRowRepository()

	query, args := repo.selectQuery(dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "device_id", Value: "d1", Operator: dto.FilterOperatorEq},
	}}, "LIMIT 1")

	assert.Equal(t, "SELECT id, device_id, created_at, modified_at FROM rows WHERE (device_id = :device_id) LIMIT 1", query)
	assert.Equal(t, map[string]any{"device_id": "d1"}, args)

	query, args = repo.selectQuery(dto.FilterGroup{}, "")

	assert.Equal(t, "SELECT id, device_id, created_at, modified_at FROM rows", query)
	assert.Empty(t, args)
}
