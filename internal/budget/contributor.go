package budget

import (
	"github.com/shopspring/decimal"
	"github.com/umuryango/backend/internal/models"
	"github.com/umuryango/backend/internal/types"
)

// AddContributor records a contribution to the month. The entered amount
// is treated as already paid, so nothing remains outstanding for the new
// contributor. Months without any planned budget reject contributors.
func (s *Service) AddContributor(m types.Month, name string, amount decimal.Decimal) (models.Contributor, error) {
	var contributor models.Contributor

	_, err := s.withMonth(m, func(b *models.MonthlyBudget) error {
		if b.TotalBudget.IsZero() {
			return ErrMonthHasNoBudget
		}

		contributor = models.NewContributor(name, amount)
		b.Contributors = append(b.Contributors, contributor)
		return nil
	})
	if err != nil {
		return models.Contributor{}, err
	}

	return contributor, nil
}

// UpdateContributor merges the update into the contributor and recomputes
// its remaining amount.
func (s *Service) UpdateContributor(m types.Month, id string, update models.ContributorUpdate) (models.Contributor, error) {
	var contributor models.Contributor

	_, err := s.withMonth(m, func(b *models.MonthlyBudget) error {
		c := b.Contributor(id)
		if c == nil {
			return ErrContributorNotFound
		}

		c.Apply(update)
		contributor = *c
		return nil
	})
	if err != nil {
		return models.Contributor{}, err
	}

	return contributor, nil
}
