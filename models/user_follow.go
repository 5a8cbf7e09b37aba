package models

import (
	"time"
)

type UserFollow struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follow_pair,priority:1" json:"follower_id"`
	FolloweeID uint64    `gorm:"column:followee_id;not null;uniqueIndex:uk_follow_pair,priority:2;index:idx_follow_followee" json:"followee_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follow"
}

// All lists every table owned by this service in migration order.
func All() []any {
	return []any{
		&User{},
		&Ingredient{},
		&Tag{},
		&Recipe{},
		&RecipeIngredient{},
		&RecipeTag{},
		&RecipeRelation{},
		&UserFollow{},
	}
}
