package services

import (
	"strings"
	"time"

	"stockdir/internal/finnhub"
	"stockdir/models"
)

// fakeDirectoryStore is an in-memory DirectoryStore.
type fakeDirectoryStore struct {
	companies []*models.Company
	nextID    uint
}

func (f *fakeDirectoryStore) Save(company *models.Company) error {
	if company.ID == 0 {
		f.nextID++
		company.ID = f.nextID
		company.CreatedAt = time.Now()
		copied := *company
		f.companies = append(f.companies, &copied)
		return nil
	}

	for i, existing := range f.companies {
		if existing.ID == company.ID {
			copied := *company
			// created_at is not updatable
			copied.CreatedAt = existing.CreatedAt
			company.CreatedAt = existing.CreatedAt
			f.companies[i] = &copied
			return nil
		}
	}

	return nil
}

func (f *fakeDirectoryStore) FindByID(id uint) (*models.Company, error) {
	for _, company := range f.companies {
		if company.ID == id {
			copied := *company
			return &copied, nil
		}
	}

	return nil, nil
}

func (f *fakeDirectoryStore) FindAll() ([]models.Company, error) {
	companies := make([]models.Company, 0, len(f.companies))
	for _, company := range f.companies {
		companies = append(companies, *company)
	}

	return companies, nil
}

func (f *fakeDirectoryStore) ExistsBySymbol(symbol string) (bool, error) {
	for _, company := range f.companies {
		if strings.EqualFold(company.Symbol, symbol) {
			return true, nil
		}
	}

	return false, nil
}

// fakeSnapshotStore is an in-memory SnapshotStore enforcing the
// (company, date) uniqueness the real store gets from its index.
type fakeSnapshotStore struct {
	stocks []*models.CompanyStock
	nextID uint
}

func (f *fakeSnapshotStore) FindByCompanyAndDate(companyID uint, date time.Time) (*models.CompanyStock, error) {
	for _, stock := range f.stocks {
		if stock.CompanyID == companyID && sameDate(stock.FetchDate, date) {
			copied := *stock
			return &copied, nil
		}
	}

	return nil, nil
}

func (f *fakeSnapshotStore) Create(stock *models.CompanyStock) error {
	if existing, _ := f.FindByCompanyAndDate(stock.CompanyID, stock.FetchDate); existing != nil {
		return models.ErrDuplicateSnapshot
	}

	f.nextID++
	stock.ID = f.nextID
	stock.CreatedAt = time.Now()
	copied := *stock
	f.stocks = append(f.stocks, &copied)
	return nil
}

func sameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// fakeQuoteProvider returns canned profiles per symbol and counts calls.
type fakeQuoteProvider struct {
	profiles map[string]*finnhub.CompanyProfile
	err      error
	calls    int
}

func (f *fakeQuoteProvider) CompanyProfile(symbol string) (*finnhub.CompanyProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	if profile, ok := f.profiles[symbol]; ok {
		return profile, nil
	}

	// Finnhub answers unknown symbols with an empty object.
	return &finnhub.CompanyProfile{}, nil
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}
