package repository

import (
	"errors"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/utils"
	"gorm.io/gorm"
)

type TokenRepository struct{ DB *gorm.DB }

func NewTokenRepository(db *gorm.DB) *TokenRepository { return &TokenRepository{DB: db} }

// GetOrCreateForUser returns the user's token, minting one on first login.
// Repeated logins reuse the same key; there is no rotation.
func (r *TokenRepository) GetOrCreateForUser(userID uint) (*entity.ApiToken, error) {
	var t entity.ApiToken
	err := r.DB.Where("user_id = ?", userID).First(&t).Error
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, err
	}
	t = entity.ApiToken{UserID: userID, Key: key}
	if err := r.DB.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
