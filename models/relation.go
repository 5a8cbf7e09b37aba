package models

import "time"

type RelationKind string

const (
	RelationFavorite     RelationKind = "favorite"
	RelationShoppingCart RelationKind = "shopping_cart"
)

func (k RelationKind) Valid() bool {
	return k == RelationFavorite || k == RelationShoppingCart
}

// RecipeRelation links a user to a recipe. Unique per (user_id, recipe_id, kind).
type RecipeRelation struct {
	ID        uint64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64       `gorm:"column:user_id;not null;uniqueIndex:uk_user_recipe_kind,priority:1" json:"user_id"`
	RecipeID  uint64       `gorm:"column:recipe_id;not null;uniqueIndex:uk_user_recipe_kind,priority:2;index:idx_relation_recipe" json:"recipe_id"`
	Kind      RelationKind `gorm:"column:kind;size:16;not null;uniqueIndex:uk_user_recipe_kind,priority:3" json:"kind"`
	CreatedAt time.Time    `gorm:"column:created_at" json:"created_at"`
}

func (RecipeRelation) TableName() string {
	return "recipe_relations"
}
