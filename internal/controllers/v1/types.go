package v1

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/umuryango/backend/internal/models"
)

// MealItemEditable are the fields of a meal item that clients can set.
type MealItemEditable struct {
	Name        string          `json:"name" example:"Riz"`
	Price       decimal.Decimal `json:"price" example:"2500"`
	Contributor string          `json:"contributor" example:"Alice"`
}

func (e MealItemEditable) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errNameRequired
	}

	if !e.Price.IsPositive() {
		return errPriceNotPositive
	}

	return nil
}

func (e MealItemEditable) model() models.MealItem {
	return models.MealItem{
		Name:        strings.TrimSpace(e.Name),
		Price:       e.Price,
		Contributor: e.Contributor,
	}
}

// MealItemsEditable is the body for replacing all items of a meal.
type MealItemsEditable struct {
	Items []MealItemEditable `json:"items"`
}

func (e MealItemsEditable) validate() error {
	for _, item := range e.Items {
		if err := item.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (e MealItemsEditable) models() []models.MealItem {
	items := make([]models.MealItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, item.model())
	}

	return items
}

// DayEditable is the body for duplicating a day from copied meals.
type DayEditable struct {
	Meals []models.Meal `json:"meals"`
}

// ContributorEditable are the fields of a contributor that clients can set
// on creation.
type ContributorEditable struct {
	Name   string          `json:"name" example:"Alice"`
	Amount decimal.Decimal `json:"amount" example:"50000"`
}

func (e ContributorEditable) validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errNameRequired
	}

	if !e.Amount.IsPositive() {
		return errAmountNotPositive
	}

	return nil
}
