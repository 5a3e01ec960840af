package dto

import (
	"github.com/google/uuid"

	"royalpalace/internal/domains/payment/model"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	gModel "royalpalace/shared/model"
	"royalpalace/shared/timezone"
)

type CreatePaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,oneof=CASH BANK_TRANSFER CARD"`
}

func (c *CreatePaymentRequest) ToModel(bookingID, actor string) model.Payment {
	now := timezone.Now()

	return model.Payment{
		ID:            uuid.NewString(),
		BookingID:     bookingID,
		TransactionID: model.NewTransactionID(now),
		Amount:        c.Amount,
		Method:        c.Method,
		Status:        model.StatusCompleted,
		PaidAt:        now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	PaidAt        string  `json:"paid_at"`
	gDto.Metadata
}

func (p *PaymentResponse) FromModel(model model.Payment) {
	p.ID = model.ID
	p.BookingID = model.BookingID
	p.TransactionID = model.TransactionID
	p.Amount = model.Amount
	p.Method = model.Method
	p.Status = model.Status
	p.PaidAt = timezone.Format(model.PaidAt, constant.DateFormat)
	p.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

func (g *GetPaymentsResponse) FromModels(models []model.Payment) {
	g.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		g.Payments[i].FromModel(mod)
	}
}
