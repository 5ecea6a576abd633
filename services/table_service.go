package services

import (
	"errors"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"gorm.io/gorm"
)

type TableService struct {
	DB   *gorm.DB
	Repo *repository.TableRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) Create(number int) (*entity.Table, error) {
	t := entity.Table{Number: number}
	if err := s.Repo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TableService) Delete(id uint) error {
	err := s.Repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Toggle flips occupancy and returns the new state. Two toggles are a no-op.
func (s *TableService) Toggle(id uint) (bool, error) {
	var occupied bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var t entity.Table
		if err := tx.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		t.Occupied = !t.Occupied
		occupied = t.Occupied
		return tx.Save(&t).Error
	})
	return occupied, err
}
