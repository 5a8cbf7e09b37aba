package dao

import (
	"context"

	"Foodgram/models"
	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) Get(ctx context.Context, id uint64) (*models.User, error) {
	user, err := u.FindByID(ctx, id)
	if err != nil {
		return nil, translate("get user", err, ErrUserNotFound, nil)
	}
	return user, nil
}

// List 分页查询用户, 按 id 升序
func (u *Users) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var total int64
	if err := u.Model(ctx).Count(&total).Error; err != nil {
		return nil, 0, errs.Infra("count users", err)
	}

	users := make([]*models.User, 0, limit)
	err := u.Conn(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, errs.Infra("list users", err)
	}
	return users, total, nil
}

// GetOrCreateByEmail is used by seeding tools.
func (u *Users) GetOrCreateByEmail(ctx context.Context, user *models.User) error {
	err := u.Conn(ctx).
		Where("email = ?", user.Email).
		Attrs(models.User{Username: user.Username, FirstName: user.FirstName, LastName: user.LastName, IsActive: true}).
		FirstOrCreate(user).Error
	return translate("get or create user", err, nil, nil)
}
