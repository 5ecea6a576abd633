package services

import (
	"errors"
	"strings"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ---------------- Customer reads ----------------

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

// CategoryDetail returns the category plus its active products.
func (s *CatalogService) CategoryDetail(id uint) (*entity.Category, []entity.Product, error) {
	cat, err := s.Repo.GetCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	products, err := s.Repo.ListActiveByCategory(cat.ID)
	if err != nil {
		return nil, nil, err
	}
	return cat, products, nil
}

func (s *CatalogService) ListProducts(categoryID uint) ([]entity.Product, error) {
	return s.Repo.ListActiveProducts(categoryID)
}

func (s *CatalogService) ProductDetail(id uint) (*entity.Product, error) {
	p, err := s.Repo.GetProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ---------------- Admin writes ----------------

func (s *CatalogService) CreateCategory(name, description string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	n, err := s.Repo.CountCategoriesByName(name, 0)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateName
	}
	cat := entity.Category{Name: name, Description: description}
	if err := s.Repo.CreateCategory(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CatalogService) UpdateCategory(id uint, name, description string) (*entity.Category, error) {
	cat, err := s.Repo.GetCategory(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	name = strings.TrimSpace(name)
	n, err := s.Repo.CountCategoriesByName(name, cat.ID)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateName
	}

	cat.Name = name
	cat.Description = description
	if err := s.Repo.SaveCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	err := s.Repo.DeleteCategory(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type ProductIn struct {
	CategoryID  uint
	Name        string
	Description string
	Price       decimal.Decimal
	Status      string
}

func (s *CatalogService) CreateProduct(in *ProductIn) (*entity.Product, error) {
	if in.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if _, err := s.Repo.GetCategory(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.ProductActive
	}
	p := entity.Product{
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Status:      status,
	}
	if err := s.Repo.CreateProduct(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *CatalogService) UpdateProduct(id uint, in *ProductIn) (*entity.Product, error) {
	if in.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	p, err := s.Repo.GetProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.CategoryID != 0 && in.CategoryID != p.CategoryID {
		if _, err := s.Repo.GetCategory(in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		p.CategoryID = in.CategoryID
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	if in.Status != "" {
		p.Status = in.Status
	}
	if err := s.Repo.SaveProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	err := s.Repo.DeleteProduct(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// AttachImage records the stored image path on the product.
func (s *CatalogService) AttachImage(id uint, path string) (*entity.Product, error) {
	p, err := s.Repo.GetProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Image = path
	if err := s.Repo.SaveProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}
