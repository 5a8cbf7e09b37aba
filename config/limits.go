package config

import "fmt"

// Limits holds the validation bounds used by request validators.
// It is passed by value so a validator can never change the bounds it was given.
type Limits struct {
	MinCookingTime      int   `json:"min_cooking_time" yaml:"min_cooking_time"`
	MinIngredientAmount int   `json:"min_ingredient_amount" yaml:"min_ingredient_amount"`
	RecipeNameMin       int   `json:"recipe_name_min" yaml:"recipe_name_min"`
	RecipeNameMax       int   `json:"recipe_name_max" yaml:"recipe_name_max"`
	IngredientNameMax   int   `json:"ingredient_name_max" yaml:"ingredient_name_max"`
	MeasurementUnitMax  int   `json:"measurement_unit_max" yaml:"measurement_unit_max"`
	TagMax              int   `json:"tag_max" yaml:"tag_max"`
	DefaultPageSize     int   `json:"default_page_size" yaml:"default_page_size"`
	MaxPageSize         int   `json:"max_page_size" yaml:"max_page_size"`
	MaxImageSize        int64 `json:"max_image_size" yaml:"max_image_size"`
}

// DefaultLimits mirrors the bounds the web client was built against.
func DefaultLimits() Limits {
	return Limits{
		MinCookingTime:      1,
		MinIngredientAmount: 1,
		RecipeNameMin:       2,
		RecipeNameMax:       256,
		IngredientNameMax:   128,
		MeasurementUnitMax:  64,
		TagMax:              32,
		DefaultPageSize:     6,
		MaxPageSize:         100,
		MaxImageSize:        5 << 20,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MinCookingTime <= 0 {
		l.MinCookingTime = d.MinCookingTime
	}
	if l.MinIngredientAmount <= 0 {
		l.MinIngredientAmount = d.MinIngredientAmount
	}
	if l.RecipeNameMin <= 0 {
		l.RecipeNameMin = d.RecipeNameMin
	}
	if l.RecipeNameMax <= 0 {
		l.RecipeNameMax = d.RecipeNameMax
	}
	if l.IngredientNameMax <= 0 {
		l.IngredientNameMax = d.IngredientNameMax
	}
	if l.MeasurementUnitMax <= 0 {
		l.MeasurementUnitMax = d.MeasurementUnitMax
	}
	if l.TagMax <= 0 {
		l.TagMax = d.TagMax
	}
	if l.DefaultPageSize <= 0 {
		l.DefaultPageSize = d.DefaultPageSize
	}
	if l.MaxPageSize <= 0 {
		l.MaxPageSize = d.MaxPageSize
	}
	if l.MaxImageSize <= 0 {
		l.MaxImageSize = d.MaxImageSize
	}
	return l
}

// Validate rejects bound combinations no request could satisfy.
func (l Limits) Validate() error {
	if l.RecipeNameMin > l.RecipeNameMax {
		return fmt.Errorf("limits: recipe_name_min %d > recipe_name_max %d", l.RecipeNameMin, l.RecipeNameMax)
	}
	if l.DefaultPageSize > l.MaxPageSize {
		return fmt.Errorf("limits: default_page_size %d > max_page_size %d", l.DefaultPageSize, l.MaxPageSize)
	}
	return nil
}
