package model

import (
	"staybook/shared/model"
)

const (
	TableName  = "booking_receipts"
	EntityName = "receipt"

	FieldID        = "id"
	FieldDeviceID  = "device_id"
	FieldReference = "reference"
	FieldStartDate = "start_date"
	FieldCreatedAt = "created_at"
)

// SortableFields are the columns a receipt listing may be ordered by.
var SortableFields = []string{FieldCreatedAt, FieldStartDate, FieldReference}

// Receipt is the locally kept trace of a created booking. It never holds guest details.
type Receipt struct {
	ID          string  `db:"id"`
	DeviceID    string  `db:"device_id"`
	Reference   string  `db:"reference"`
	Type        string  `db:"type"`
	StartDate   string  `db:"start_date"`
	EndDate     *string `db:"end_date"`
	ArrivalTime *string `db:"arrival_time"`
	model.Metadata
}
