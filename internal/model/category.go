package model

import "github.com/shopspring/decimal"

// TicketCategory is a named price tier independent of any specific
// session slot. Eligibility flags describe who may buy the tier; they are
// informational and rendered on the order page, not enforced at checkout.
type TicketCategory struct {
	ID                    uint64          // ticket_categories.id
	Name                  string          // ticket_categories.name
	Price                 decimal.Decimal // ticket_categories.price (DECIMAL(10,2))
	AcceptsSubsidizedCard bool            // ticket_categories.accepts_subsidized_card
	MinAge                uint32          // ticket_categories.min_age (0 = no restriction)
	StudentDiscount       bool            // ticket_categories.student_discount
}
