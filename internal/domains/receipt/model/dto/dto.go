package dto

import (
	"staybook/internal/domains/receipt/model"
	"staybook/shared"
	gDto "staybook/shared/dto"
	gModel "staybook/shared/model"
	"staybook/shared/timezone"
)

// SaveReceiptRequest is the scrubbed subset of a booking-creation response that gets stored.
type SaveReceiptRequest struct {
	ID          string `json:"id"           validate:"required,max=64"`
	Reference   string `json:"reference"    validate:"required,max=64"`
	Type        string `json:"type"         validate:"required,oneof=LODGING DINING"`
	StartDate   string `json:"start_date"   validate:"required,isodate"`
	EndDate     string `json:"end_date"     validate:"omitempty,isodate"`
	ArrivalTime string `json:"arrival_time" validate:"omitempty,clock"`
}

func (r *SaveReceiptRequest) ToModel(deviceID string) model.Receipt {
	now := timezone.Now()

	return model.Receipt{
		ID:          r.ID,
		DeviceID:    deviceID,
		Reference:   r.Reference,
		Type:        r.Type,
		StartDate:   r.StartDate,
		EndDate:     optional(r.EndDate),
		ArrivalTime: optional(r.ArrivalTime),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

type ReceiptResponse struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	Type        string `json:"type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	ArrivalTime string `json:"arrival_time,omitempty"`
	gDto.Metadata
}

func (r *ReceiptResponse) FromModel(model model.Receipt) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.Type = model.Type
	r.StartDate = model.StartDate

	if model.EndDate != nil {
		r.EndDate = *model.EndDate
	}

	if model.ArrivalTime != nil {
		r.ArrivalTime = *model.ArrivalTime
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetReceiptsResponse struct {
	Receipts  []ReceiptResponse `json:"receipts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetReceiptsResponse) FromModels(models []model.Receipt, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Receipts = make([]ReceiptResponse, len(models))
	for i, mod := range models {
		r.Receipts[i].FromModel(mod)
	}
}
