package services

import (
	"errors"
	"strings"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, credential login and token issuance.
type AuthService struct {
	userRepo  *repository.UserRepository
	tokenRepo *repository.TokenRepository
	cartRepo  *repository.CartRepository
}

func NewAuthService(ur *repository.UserRepository, tr *repository.TokenRepository, cr *repository.CartRepository) *AuthService {
	return &AuthService{userRepo: ur, tokenRepo: tr, cartRepo: cr}
}

// Register creates a customer account plus its cart. Duplicate emails fail
// with ErrEmailTaken.
func (s *AuthService) Register(email, password, firstName, lastName, avatarDefault string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	if avatarDefault == "" {
		avatarDefault = "imagen01.png"
	}

	user := &entity.User{
		Email:         email,
		Password:      string(hashed),
		FirstName:     strings.TrimSpace(firstName),
		LastName:      strings.TrimSpace(lastName),
		AvatarDefault: avatarDefault,
		Role:          entity.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Every account gets its cart up front.
	if _, err := s.cartRepo.GetOrCreateCart(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and returns the user's API token, creating it on
// first login. The same key comes back on every later login.
func (s *AuthService) Login(email, password string) (*entity.User, *entity.ApiToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.tokenRepo.GetOrCreateForUser(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, token, nil
}
