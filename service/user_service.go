package service

import (
	"context"
	"errors"
	"hbnb-api/logger"
	"hbnb-api/model"
	"hbnb-api/repository"
)

// UserService handles user-related business logic.
type UserService struct {
	users   repository.IUserRepository
	reviews repository.IReviewRepository
	hasher  PasswordHasher
	cache   ICacheClient
}

// NewUserService builds the service. cache may be nil.
func NewUserService(users repository.IUserRepository, reviews repository.IReviewRepository, hasher PasswordHasher, cache ICacheClient) *UserService {
	return &UserService{users: users, reviews: reviews, hasher: hasher, cache: cache}
}

// Register creates a regular (non-admin) user with a hashed password.
func (s *UserService) Register(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	hashedPassword, err := hashPassword(s.hasher, req.Password)
	if err != nil {
		if !errors.Is(err, ErrInvalidInput) {
			logger.Log.WithError(err).Error("Failed to hash password")
		}
		return nil, err
	}

	user := &model.User{
		Email:     normalizeEmail(req.Email),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashedPassword,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, wrapRepoError(err, "user")
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	return user, wrapRepoError(err, "user")
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.List(ctx)
}

// Update applies req to the user identified by id. Only the user or an admin
// may do so, and only an admin may change is_admin.
func (s *UserService) Update(ctx context.Context, actor Actor, id string, req model.UpdateUserRequest) (*model.User, error) {
	if !actor.CanModify(id) {
		return nil, ErrForbidden
	}
	if req.IsAdmin != nil && !actor.IsAdmin {
		return nil, ErrForbidden
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "user")
	}

	if req.Email != nil {
		user.Email = normalizeEmail(*req.Email)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.Password != nil {
		hashed, err := hashPassword(s.hasher, *req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, wrapRepoError(err, "user")
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return wrapRepoError(err, "user")
	}
	// The user's places go with them.
	cacheDel(ctx, s.cache, placesCacheKey)
	return nil
}

// Reviews lists the reviews written by the user.
func (s *UserService) Reviews(ctx context.Context, userID string) ([]*model.Review, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, wrapRepoError(err, "user")
	}
	return s.reviews.ListByUser(ctx, userID)
}

// EnsureAdmin creates an admin account with the given credentials unless the
// email is already registered.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (*model.User, bool, error) {
	email = normalizeEmail(email)
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	hashed, err := hashPassword(s.hasher, password)
	if err != nil {
		return nil, false, err
	}
	user := &model.User{Email: email, FirstName: "Admin", LastName: "HBnB", Password: hashed, IsAdmin: true}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, wrapRepoError(err, "user")
	}
	return user, true, nil
}
