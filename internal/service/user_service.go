package service

import (
	"context"

	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

// UserService exposes read access to registered users.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}
