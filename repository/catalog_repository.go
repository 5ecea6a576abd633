package repository

import (
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetCategory(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CatalogRepository) SaveCategory(c *entity.Category) error {
	return r.DB.Save(c).Error
}

func (r *CatalogRepository) DeleteCategory(id uint) error {
	res := r.DB.Delete(&entity.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CatalogRepository) CountCategoriesByName(name string, excludeID uint) (int64, error) {
	var n int64
	q := r.DB.Model(&entity.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n, err
}

// ---------------- Products ----------------

// ListActiveProducts returns customer-visible products, optionally filtered
// by category.
func (r *CatalogRepository) ListActiveProducts(categoryID uint) ([]entity.Product, error) {
	q := r.DB.Where("status = ?", entity.ProductActive)
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var out []entity.Product
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

// ListActiveByCategory is the category-detail view of the catalog.
func (r *CatalogRepository) ListActiveByCategory(categoryID uint) ([]entity.Product, error) {
	return r.ListActiveProducts(categoryID)
}

// ListAllProducts is the admin view: every status.
func (r *CatalogRepository) ListAllProducts() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) CreateProduct(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *CatalogRepository) SaveProduct(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	res := r.DB.Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
