package models

import (
	"errors"
	"time"
)

// ErrDuplicateSnapshot is returned by the snapshot store when a row for the
// same (company, fetch date) already exists.
var ErrDuplicateSnapshot = errors.New("snapshot already exists for company and date")

// CompanyStock is one day's cached market snapshot for a company. Rows are
// written once on a cache miss and never updated afterwards.
type CompanyStock struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CompanyID uint    `gorm:"not null;uniqueIndex:uk_company_stock_company_date" json:"company_id"`
	Company   Company `json:"-"`
	// FetchDate is the cache bucket: one snapshot per company per calendar
	// day.
	FetchDate            time.Time `gorm:"type:date;not null;uniqueIndex:uk_company_stock_company_date" json:"fetch_date"`
	MarketCapitalization float64   `gorm:"not null" json:"market_capitalization"`
	ShareOutstanding     float64   `gorm:"not null" json:"share_outstanding"`
}

// NewCompanyStock builds a snapshot from provider figures. Either numeric
// being absent makes the snapshot unusable, so construction fails before
// anything reaches the database.
func NewCompanyStock(company *Company, fetchDate time.Time, marketCapitalization, shareOutstanding *float64) (*CompanyStock, error) {
	if company == nil {
		return nil, errors.New("company is required")
	}
	if marketCapitalization == nil {
		return nil, errors.New("market capitalization is required")
	}
	if shareOutstanding == nil {
		return nil, errors.New("share outstanding is required")
	}

	return &CompanyStock{
		CompanyID:            company.ID,
		FetchDate:            fetchDate,
		MarketCapitalization: *marketCapitalization,
		ShareOutstanding:     *shareOutstanding,
	}, nil
}
