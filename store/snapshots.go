package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"stockdir/models"
)

// Snapshots is the gorm-backed store for daily CompanyStock rows. The
// composite unique index on (company_id, fetch_date) is the only
// serialization point between concurrent cache misses for the same bucket.
type Snapshots struct {
	db *gorm.DB
}

func NewSnapshots(db *gorm.DB) *Snapshots {
	return &Snapshots{db: db}
}

func (s *Snapshots) FindByCompanyAndDate(companyID uint, date time.Time) (*models.CompanyStock, error) {
	var stock models.CompanyStock
	err := s.db.Where("company_id = ? AND fetch_date = ?", companyID, date.Format("2006-01-02")).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &stock, nil
}

// Create inserts the snapshot. When another request already persisted a row
// for the same company and day, the unique index rejects the insert and the
// error wraps models.ErrDuplicateSnapshot. Requires TranslateError on the
// gorm config so driver unique violations surface as gorm.ErrDuplicatedKey.
func (s *Snapshots) Create(stock *models.CompanyStock) error {
	err := s.db.Create(stock).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: company %v on %v", models.ErrDuplicateSnapshot, stock.CompanyID, stock.FetchDate.Format("2006-01-02"))
	}

	return err
}
