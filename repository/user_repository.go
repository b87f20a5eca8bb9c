package repository

import (
	"context"
	"hbnb-api/logger"
	"hbnb-api/model"

	"gorm.io/gorm"
)

// IUserRepository defines the contract for user persistence.
type IUserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	log := logger.Log.WithField("email", user.Email)
	log.Debug("Executing query to create a new user")

	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		log.WithError(err).Error("Failed to execute create user query")
		return translate(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.DB.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to execute list users query")
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	if err := r.DB.WithContext(ctx).Save(user).Error; err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID).Error("Failed to execute update user query")
		return translate(err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		logger.Log.WithError(res.Error).WithField("user_id", id).Error("Failed to execute delete user query")
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
