package store

import (
	"errors"

	"gorm.io/gorm"

	"stockdir/models"
)

// Directory is the gorm-backed store for Company records.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

// Save inserts the company when it has no ID yet and updates it otherwise.
// CreatedAt is assigned by gorm on insert and carried through on updates.
func (d *Directory) Save(company *models.Company) error {
	return d.db.Save(company).Error
}

func (d *Directory) FindByID(id uint) (*models.Company, error) {
	var company models.Company
	err := d.db.First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &company, nil
}

func (d *Directory) FindAll() ([]models.Company, error) {
	var companies []models.Company
	if err := d.db.Find(&companies).Error; err != nil {
		return nil, err
	}

	return companies, nil
}

// ExistsBySymbol reports whether a company with the symbol is already in the
// directory. Symbols are stored upper-case, so callers pass the normalized
// form.
func (d *Directory) ExistsBySymbol(symbol string) (bool, error) {
	var count int64
	err := d.db.Model(&models.Company{}).Where("symbol = ?", symbol).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
