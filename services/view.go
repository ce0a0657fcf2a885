package services

import (
	"time"

	"stockdir/internal/finnhub"
	"stockdir/models"
)

// CompanyStocksView is the request-scoped merge of current directory fields
// and the resolved snapshot's numerics. It is assembled fresh per request and
// never persisted.
type CompanyStocksView struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Country              string    `json:"country"`
	Symbol               string    `json:"symbol"`
	Website              string    `json:"website,omitempty"`
	Email                string    `json:"email"`
	CreatedAt            time.Time `json:"created_at"`
	MarketCapitalization *float64  `json:"market_capitalization"`
	ShareOutstanding     *float64  `json:"share_outstanding"`
}

func fromCompany(company *models.Company) *CompanyStocksView {
	return &CompanyStocksView{
		ID:        company.ID,
		Name:      company.Name,
		Country:   company.Country,
		Symbol:    company.Symbol,
		Website:   company.Website,
		Email:     company.Email,
		CreatedAt: company.CreatedAt,
	}
}

// AssembleFromStock merges a company with a persisted snapshot.
func AssembleFromStock(company *models.Company, stock *models.CompanyStock) *CompanyStocksView {
	view := fromCompany(company)
	if stock != nil {
		marketCapitalization := stock.MarketCapitalization
		shareOutstanding := stock.ShareOutstanding
		view.MarketCapitalization = &marketCapitalization
		view.ShareOutstanding = &shareOutstanding
	}

	return view
}

// AssembleFromProfile merges a company with a raw provider payload. Absent
// provider fields leave the view fields unset.
func AssembleFromProfile(company *models.Company, profile *finnhub.CompanyProfile) *CompanyStocksView {
	view := fromCompany(company)
	if profile != nil {
		view.MarketCapitalization = profile.MarketCapitalization
		view.ShareOutstanding = profile.ShareOutstanding
	}

	return view
}
