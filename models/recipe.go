package models

import "time"

// Recipe ids come from the snowflake generator.
type Recipe struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	AuthorID    uint64    `gorm:"column:author_id;not null;index:idx_recipes_author" json:"author_id"`
	Name        string    `gorm:"column:name;size:256;not null" json:"name"`
	Image       string    `gorm:"column:image;size:255;not null" json:"image"`
	Text        string    `gorm:"column:text;type:text;not null" json:"text"`
	CookingTime int       `gorm:"column:cooking_time;not null" json:"cooking_time"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_recipes_created" json:"created_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is one line item. A recipe holds an ingredient at most once.
type RecipeIngredient struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID     uint64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_ingredient,priority:1" json:"recipe_id"`
	IngredientID uint64 `gorm:"column:ingredient_id;not null;uniqueIndex:uk_recipe_ingredient,priority:2;index:idx_ri_ingredient" json:"ingredient_id"`
	Amount       int    `gorm:"column:amount;not null" json:"amount"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

type RecipeTag struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID uint64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_tag,priority:1" json:"recipe_id"`
	TagID    uint64 `gorm:"column:tag_id;not null;uniqueIndex:uk_recipe_tag,priority:2;index:idx_rt_tag" json:"tag_id"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}

// IngredientAmount is a line item joined with its ingredient.
type IngredientAmount struct {
	RecipeID        uint64 `gorm:"column:recipe_id"`
	IngredientID    uint64 `gorm:"column:ingredient_id"`
	Name            string `gorm:"column:name"`
	MeasurementUnit string `gorm:"column:measurement_unit"`
	Amount          int64  `gorm:"column:amount"`
}

// RecipeTagRow is a tag joined with the recipe it is attached to.
type RecipeTagRow struct {
	RecipeID uint64 `gorm:"column:recipe_id"`
	ID       uint64 `gorm:"column:id"`
	Name     string `gorm:"column:name"`
	Slug     string `gorm:"column:slug"`
}
