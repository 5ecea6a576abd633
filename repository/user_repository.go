package repository

import (
	"errors"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListCustomers lists non-admin accounts.
func (r *UserRepository) ListCustomers() ([]entity.User, error) {
	var out []entity.User
	err := r.DB.Where("role <> ?", entity.RoleAdmin).Order("id ASC").Find(&out).Error
	return out, err
}

// Delete removes the account together with its token and cart, so the key
// stops authenticating the moment the user is gone.
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Unscoped().Where("user_id = ?", id).Delete(&entity.ApiToken{}).Error; err != nil {
			return err
		}

		var cart entity.Cart
		err := tx.Where("user_id = ?", id).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&cart).Error
	})
}
