package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stockdir/internal/finnhub"
	"stockdir/models"
)

func TestAssembleFromStock(t *testing.T) {
	createdAt := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	company := &models.Company{
		ID:        5,
		Name:      "Acme",
		Country:   "US",
		Symbol:    "ACME",
		Website:   "https://acme.example",
		Email:     "a@a.com",
		CreatedAt: createdAt,
	}
	stock := &models.CompanyStock{
		CompanyID:            5,
		MarketCapitalization: 111.0,
		ShareOutstanding:     22.0,
	}

	view := AssembleFromStock(company, stock)

	assert.Equal(t, uint(5), view.ID)
	assert.Equal(t, "Acme", view.Name)
	assert.Equal(t, "US", view.Country)
	assert.Equal(t, "ACME", view.Symbol)
	assert.Equal(t, "https://acme.example", view.Website)
	assert.Equal(t, "a@a.com", view.Email)
	assert.Equal(t, createdAt, view.CreatedAt)
	assert.Equal(t, 111.0, *view.MarketCapitalization)
	assert.Equal(t, 22.0, *view.ShareOutstanding)
}

func TestAssembleFromStockWithoutStock(t *testing.T) {
	view := AssembleFromStock(&models.Company{ID: 1, Name: "Acme"}, nil)

	assert.Nil(t, view.MarketCapitalization)
	assert.Nil(t, view.ShareOutstanding)
}

func TestAssembleFromProfile(t *testing.T) {
	company := &models.Company{ID: 1, Name: "Acme", Symbol: "ACME"}

	t.Run("full payload", func(t *testing.T) {
		view := AssembleFromProfile(company, &finnhub.CompanyProfile{
			MarketCapitalization: floatPtr(111.0),
			ShareOutstanding:     floatPtr(22.0),
		})

		assert.Equal(t, 111.0, *view.MarketCapitalization)
		assert.Equal(t, 22.0, *view.ShareOutstanding)
	})

	t.Run("absent fields stay unset", func(t *testing.T) {
		view := AssembleFromProfile(company, &finnhub.CompanyProfile{})

		assert.Nil(t, view.MarketCapitalization)
		assert.Nil(t, view.ShareOutstanding)
	})
}
