package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contributor is a person whose payment counts toward covering a month's
// budget. RemainingAmount is always TotalContribution minus PaidAmount and
// may go negative when someone overpays.
type Contributor struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	TotalContribution decimal.Decimal `json:"totalContribution"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
}

// NewContributor returns a contributor for an amount that has already been
// paid: the entered amount is recorded as both the total contribution and
// the paid amount, leaving nothing outstanding.
func NewContributor(name string, amount decimal.Decimal) Contributor {
	return Contributor{
		ID:                uuid.NewString(),
		Name:              name,
		TotalContribution: amount,
		PaidAmount:        amount,
		RemainingAmount:   decimal.Zero,
	}
}

// ContributorUpdate is a partial update of a contributor. Nil fields are
// left unchanged.
type ContributorUpdate struct {
	Name              *string          `json:"name"`
	TotalContribution *decimal.Decimal `json:"totalContribution"`
	PaidAmount        *decimal.Decimal `json:"paidAmount"`
}

// Apply merges the update into the contributor and recomputes the
// remaining amount.
func (c *Contributor) Apply(update ContributorUpdate) {
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.TotalContribution != nil {
		c.TotalContribution = *update.TotalContribution
	}
	if update.PaidAmount != nil {
		c.PaidAmount = *update.PaidAmount
	}

	c.RemainingAmount = c.TotalContribution.Sub(c.PaidAmount)
}
