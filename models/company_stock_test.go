package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCompanyStock(t *testing.T) {
	company := &Company{ID: 3, Symbol: "TST"}
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	marketCap := 111.0
	shares := 22.0

	t.Run("all fields present", func(t *testing.T) {
		stock, err := NewCompanyStock(company, date, &marketCap, &shares)

		assert.NoError(t, err)
		assert.Equal(t, uint(3), stock.CompanyID)
		assert.Equal(t, date, stock.FetchDate)
		assert.Equal(t, 111.0, stock.MarketCapitalization)
		assert.Equal(t, 22.0, stock.ShareOutstanding)
	})

	t.Run("missing company", func(t *testing.T) {
		_, err := NewCompanyStock(nil, date, &marketCap, &shares)
		assert.Error(t, err)
	})

	t.Run("missing market capitalization", func(t *testing.T) {
		_, err := NewCompanyStock(company, date, nil, &shares)
		assert.Error(t, err)
	})

	t.Run("missing share outstanding", func(t *testing.T) {
		_, err := NewCompanyStock(company, date, &marketCap, nil)
		assert.Error(t, err)
	})
}
