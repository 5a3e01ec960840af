package model

import (
	"fmt"
	"time"

	"royalpalace/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldTransactionID = "transaction_id"
	FieldAmount        = "amount"
	FieldMethod        = "method"
	FieldStatus        = "status"
	FieldPaidAt        = "paid_at"
)

// Every payment lands as COMPLETED; partial and failed payments are not
// modeled.
const StatusCompleted = "COMPLETED"

const (
	MethodCash         = "CASH"
	MethodBankTransfer = "BANK_TRANSFER"
	MethodCard         = "CARD"
)

// Payment rows are append-only: never updated, never deleted.
type Payment struct {
	ID            string    `db:"id"`
	BookingID     string    `db:"booking_id"`
	TransactionID string    `db:"transaction_id"`
	Amount        float64   `db:"amount"`
	Method        string    `db:"method"`
	Status        string    `db:"status"`
	PaidAt        time.Time `db:"paid_at"`
	model.Metadata
}

// NewTransactionID derives the receipt identifier from the payment time.
func NewTransactionID(now time.Time) string {
	return fmt.Sprintf("TXN%d", now.UnixMilli())
}
