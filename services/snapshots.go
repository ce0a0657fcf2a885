package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"stockdir/internal/finnhub"
	"stockdir/models"
)

// SnapshotStore is the durable storage for daily snapshots.
type SnapshotStore interface {
	// FindByCompanyAndDate returns nil without error on a cache miss.
	FindByCompanyAndDate(companyID uint, date time.Time) (*models.CompanyStock, error)
	// Create fails with an error wrapping models.ErrDuplicateSnapshot when a
	// row for the same (company, date) already exists.
	Create(stock *models.CompanyStock) error
}

// QuoteProvider is the external service supplying market statistics by
// ticker symbol.
type QuoteProvider interface {
	CompanyProfile(symbol string) (*finnhub.CompanyProfile, error)
}

// SnapshotService is the cache-aside core: at most one provider fetch per
// company per calendar day, with the persisted snapshot serving every later
// request in that bucket.
type SnapshotService struct {
	directory DirectoryStore
	snapshots SnapshotStore
	provider  QuoteProvider
	logger    *zap.SugaredLogger

	// now is the clock the cache date is derived from. Injectable so tests
	// can cross the midnight boundary deterministically.
	now func() time.Time
}

func NewSnapshotService(directory DirectoryStore, snapshots SnapshotStore, provider QuoteProvider, logger *zap.SugaredLogger) *SnapshotService {
	return &SnapshotService{
		directory: directory,
		snapshots: snapshots,
		provider:  provider,
		logger:    logger,
		now:       time.Now,
	}
}

// GetSnapshot resolves the company's market snapshot for today, fetching from
// the quote provider and persisting on a cache miss. Company fields in the
// returned view reflect the current directory state, not the state at
// snapshot time.
func (s *SnapshotService) GetSnapshot(companyID uint) (*CompanyStocksView, error) {
	company, err := s.directory.FindByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company with id %v not found", ErrNotFound, companyID)
	}

	// "Today" is evaluated exactly once per request. A snapshot taken at
	// 23:59:59 and a request at 00:00:01 land in different buckets.
	today := civilDate(s.now())

	stock, err := s.snapshots.FindByCompanyAndDate(companyID, today)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock, err = s.fetchAndSave(company, today)
		if err != nil {
			return nil, err
		}
	}

	return AssembleFromStock(company, stock), nil
}

func (s *SnapshotService) fetchAndSave(company *models.Company, date time.Time) (*models.CompanyStock, error) {
	s.logger.Infow("fetching market data", "symbol", company.Symbol, "date", date.Format("2006-01-02"))

	profile, err := s.provider.CompanyProfile(company.Symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	stock, err := models.NewCompanyStock(company, date, profile.MarketCapitalization, profile.ShareOutstanding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	if err := s.snapshots.Create(stock); err != nil {
		if errors.Is(err, models.ErrDuplicateSnapshot) {
			// A concurrent request for the same bucket won the insert; serve
			// the row it persisted.
			existing, readErr := s.snapshots.FindByCompanyAndDate(company.ID, date)
			if readErr != nil {
				return nil, readErr
			}
			if existing != nil {
				return existing, nil
			}
		}

		return nil, err
	}

	return stock, nil
}

// civilDate truncates a timestamp to its calendar date, keeping the location
// so the bucket boundary follows the process clock.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
