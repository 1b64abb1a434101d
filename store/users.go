package store

import (
	"context"
	"fmt"
	"strings"

	"food-delivery-db/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// NewUser is the signup input; Password is hashed and never stored.
type NewUser struct {
	Username string `validate:"required,alphanum,min=3,max=20"`
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required,min=6,max=128"`
	Phone    string `validate:"omitempty,phone"`
	Address  string `validate:"omitempty,max=255"`
}

// WithPasswordCost overrides the bcrypt cost used for new users.
func WithPasswordCost(cost int) Option {
	return func(s *Store) { s.passwordCost = cost }
}

// CreateUser validates the signup fields and stores the user with a bcrypt hash of the
// password. Uniqueness of username and email is left to the database.
func (s *Store) CreateUser(ctx context.Context, in NewUser) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = CleanPhone(in.Phone)
	if err := s.validate.Struct(in); err != nil {
		return nil, invalid(err)
	}

	cost := s.passwordCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Address:      in.Address,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user %s: %w", in.Username, classify(err))
	}
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user created")
	return &user, nil
}

// GetUserByUsername returns ErrNotFound when no user has that name.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user %s: %w", username, classify(err))
	}
	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", id, classify(err))
	}
	return &user, nil
}

// DeleteUser removes the user; the database cascades to their orders and reviews.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.User{}, id, "user")
}
