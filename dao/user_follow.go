package dao

import (
	"context"

	"Foodgram/models"
	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
}

// Follow inserts the pair. The unique index turns a concurrent duplicate
// into AlreadyExists.
func (d *UserFollowDAO) Follow(ctx context.Context, followerID, followeeID uint64) error {
	err := d.Conn(ctx).Create(&models.UserFollow{FollowerID: followerID, FolloweeID: followeeID}).Error
	return translate("follow", err, nil, ErrSubscriptionExists)
}

func (d *UserFollowDAO) Unfollow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	n, err := d.Delete(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FollowingIDs returns which of ids the follower is subscribed to.
func (d *UserFollowDAO) FollowingIDs(ctx context.Context, followerID uint64, ids []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(ids))
	if followerID == 0 || len(ids) == 0 {
		return result, nil
	}
	var found []uint64
	err := d.Model(ctx).
		Where("follower_id = ? AND followee_id IN ?", followerID, ids).
		Pluck("followee_id", &found).Error
	if err != nil {
		return nil, errs.Infra("load following ids", err)
	}
	for _, id := range found {
		result[id] = true
	}
	return result, nil
}

// GetFollowingList 获取关注的用户列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowingList(ctx context.Context, followerID uint64, offset, limit int) ([]*models.User, int64, error) {
	var total int64
	if err := d.Model(ctx).Where("follower_id = ?", followerID).Count(&total).Error; err != nil {
		return nil, 0, errs.Infra("count following", err)
	}

	users := make([]*models.User, 0, limit)
	err := d.Conn(ctx).
		Table("user_follow AS uf").
		Select("u.*").
		Joins("JOIN users AS u ON u.id = uf.followee_id").
		Where("uf.follower_id = ?", followerID).
		Order("uf.created_at DESC").Order("uf.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&users).Error
	if err != nil {
		return nil, 0, errs.Infra("list following", err)
	}
	return users, total, nil
}
