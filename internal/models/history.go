package models

// BudgetHistory is the ledger of all monthly budgets ever produced,
// unique by month id. It grows by upsert and only shrinks through
// explicit deletion.
type BudgetHistory struct {
	MonthlyBudgets []MonthlyBudget `json:"monthlyBudgets"`
}

// NewBudgetHistory returns an empty history.
func NewBudgetHistory() BudgetHistory {
	return BudgetHistory{MonthlyBudgets: make([]MonthlyBudget, 0)}
}

// Get returns the monthly budget with the given id or nil.
func (h *BudgetHistory) Get(id string) *MonthlyBudget {
	for i := range h.MonthlyBudgets {
		if h.MonthlyBudgets[i].ID == id {
			return &h.MonthlyBudgets[i]
		}
	}

	return nil
}

// Upsert replaces the budget with the same id or appends it.
func (h *BudgetHistory) Upsert(budget MonthlyBudget) {
	for i := range h.MonthlyBudgets {
		if h.MonthlyBudgets[i].ID == budget.ID {
			h.MonthlyBudgets[i] = budget
			return
		}
	}

	h.MonthlyBudgets = append(h.MonthlyBudgets, budget)
}
