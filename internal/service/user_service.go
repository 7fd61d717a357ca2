package service

import (
	"context"
	"fmt"

	"grocerly/internal/model"
	"grocerly/internal/repository"
	"grocerly/internal/validate"
)

// UserService handles profile operations.
type UserService interface {
	UpdateProfile(ctx context.Context, userID, phoneNumber, homeAddress string) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// UpdateProfile validates and stores the contact fields, returning the
// persisted user.
func (s *userService) UpdateProfile(ctx context.Context, userID, phoneNumber, homeAddress string) (*model.User, error) {
	phone, err := validate.Phone(phoneNumber)
	if err != nil {
		return nil, err
	}
	address, err := validate.Address(homeAddress)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, userID, phone, address); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	user, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return user, nil
}
