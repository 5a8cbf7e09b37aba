package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"Foodgram/config"
	"Foodgram/pkg/errs"
	"Foodgram/types"
)

// ValidateRecipe checks a write request against limits without touching
// the store. Image is mandatory only when creating.
func ValidateRecipe(req *types.RecipeWriteRequest, limits config.Limits, create bool) error {
	name := strings.TrimSpace(req.Name)
	if n := utf8.RuneCountInString(name); n < limits.RecipeNameMin || n > limits.RecipeNameMax {
		return errs.InvalidField("name", errs.CodeInvalidField,
			fmt.Sprintf("name must be between %d and %d characters", limits.RecipeNameMin, limits.RecipeNameMax))
	}
	if strings.TrimSpace(req.Text) == "" {
		return errs.InvalidField("text", errs.CodeInvalidField, "text is required")
	}
	if req.CookingTime < limits.MinCookingTime {
		return errs.InvalidField("cooking_time", errs.CodeInvalidField,
			fmt.Sprintf("cooking_time must be at least %d", limits.MinCookingTime))
	}
	if create && strings.TrimSpace(req.Image) == "" {
		return errs.InvalidField("image", errs.CodeInvalidField, "image is required")
	}

	if len(req.Tags) == 0 {
		return errs.InvalidField("tags", errs.CodeTagsRequired, "at least one tag is required")
	}
	if dup, ok := firstDuplicate(req.Tags); ok {
		return errs.InvalidField("tags", errs.CodeTagsDuplicate, fmt.Sprintf("tag %d is listed more than once", dup))
	}

	if len(req.Ingredients) == 0 {
		return errs.InvalidField("ingredients", errs.CodeIngredientsRequired, "at least one ingredient is required")
	}
	ids := make([]uint64, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		ids = append(ids, item.ID)
	}
	if dup, ok := firstDuplicate(ids); ok {
		return errs.InvalidField("ingredients", errs.CodeIngredientsDuplicate, fmt.Sprintf("ingredient %d is listed more than once", dup))
	}
	for _, item := range req.Ingredients {
		if item.Amount < limits.MinIngredientAmount {
			return errs.InvalidField("ingredients", errs.CodeInvalidAmount,
				fmt.Sprintf("amount of ingredient %d must be at least %d", item.ID, limits.MinIngredientAmount))
		}
	}
	return nil
}

func firstDuplicate(ids []uint64) (uint64, bool) {
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return 0, false
}
