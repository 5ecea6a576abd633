package repository

import (
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) List() ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Order("number ASC").Find(&out).Error
	return out, err
}

func (r *TableRepository) GetByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// LockByNumber loads the table row FOR UPDATE so concurrent checkouts of the
// same table serialize on it.
func (r *TableRepository) LockByNumber(tx *gorm.DB, number int) (*entity.Table, error) {
	var t entity.Table
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number = ?", number).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Save(tx *gorm.DB, t *entity.Table) error {
	return tx.Save(t).Error
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Table{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
