package services

import (
	"fmt"
	"strings"

	"stockdir/models"
)

// DirectoryStore is the durable storage the directory service runs against.
type DirectoryStore interface {
	Save(company *models.Company) error
	// FindByID returns nil without error when no company has the id.
	FindByID(id uint) (*models.Company, error)
	FindAll() ([]models.Company, error)
	ExistsBySymbol(symbol string) (bool, error)
}

// CompanyInput carries candidate company fields from the caller. Website is a
// pointer so an update can clear it by leaving it absent.
type CompanyInput struct {
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol"`
	Country string  `json:"country"`
	Website *string `json:"website"`
	Email   string  `json:"email"`
}

// DirectoryService validates and normalizes company records and enforces
// symbol uniqueness before anything reaches the store.
type DirectoryService struct {
	store DirectoryStore
}

func NewDirectoryService(store DirectoryStore) *DirectoryService {
	return &DirectoryService{store: store}
}

// Create persists a new company. The symbol must not collide with any
// existing record; comparison happens on the normalized upper-case form.
func (s *DirectoryService) Create(input *CompanyInput) (*models.Company, error) {
	fields, err := normalize(input)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.ExistsBySymbol(fields.symbol)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: company with symbol %v already exists", ErrConflict, fields.symbol)
	}

	company := &models.Company{
		Name:    fields.name,
		Symbol:  fields.symbol,
		Country: fields.country,
		Website: fields.website,
		Email:   fields.email,
	}
	if err := s.store.Save(company); err != nil {
		return nil, err
	}

	return company, nil
}

// Update applies normalized fields to an existing company. CreatedAt is never
// touched. Uniqueness is only re-checked when the symbol actually changes, so
// a company keeping its own symbol is not a collision.
func (s *DirectoryService) Update(id uint, input *CompanyInput) (*models.Company, error) {
	fields, err := normalize(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: company with id %v not found", ErrNotFound, id)
	}

	if !strings.EqualFold(fields.symbol, existing.Symbol) {
		exists, err := s.store.ExistsBySymbol(fields.symbol)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: company with symbol %v already exists", ErrConflict, fields.symbol)
		}
	}

	existing.Name = fields.name
	existing.Symbol = fields.symbol
	existing.Country = fields.country
	existing.Website = fields.website
	existing.Email = fields.email
	if err := s.store.Save(existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// List returns every company in the directory. No ordering is guaranteed.
func (s *DirectoryService) List() ([]models.Company, error) {
	return s.store.FindAll()
}

type normalized struct {
	name    string
	symbol  string
	country string
	website string
	email   string
}

func normalize(input *CompanyInput) (*normalized, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: company body is required", ErrInvalidInput)
	}

	name, err := requireNonBlank(input.Name, "name")
	if err != nil {
		return nil, err
	}
	country, err := requireNonBlank(input.Country, "country")
	if err != nil {
		return nil, err
	}
	symbol, err := requireNonBlank(input.Symbol, "symbol")
	if err != nil {
		return nil, err
	}
	email, err := requireNonBlank(input.Email, "email")
	if err != nil {
		return nil, err
	}

	fields := &normalized{
		name:    name,
		country: strings.ToUpper(country),
		symbol:  strings.ToUpper(symbol),
		email:   email,
	}
	if input.Website != nil {
		fields.website = strings.TrimSpace(*input.Website)
	}

	return fields, nil
}

func requireNonBlank(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %v is required", ErrInvalidInput, field)
	}

	return trimmed, nil
}
