package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/log"
	"Foodgram/pkg/render"
	"Foodgram/types"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var _ IShoppingListService = (*ShoppingListService)(nil)

type IShoppingListService interface {
	// Build sums the ingredients of every recipe in the user's cart. ok is
	// false when the cart is empty.
	Build(ctx context.Context, userID uint64) (items []types.ShoppingItem, ok bool, err error)
	// Export builds the list and renders it in format. ok is false when the
	// cart is empty.
	Export(ctx context.Context, userID uint64, format string) (doc *render.Document, ok bool, err error)
}

type ShoppingListService struct {
	Config      *config.Config
	RelationDAO *dao.RelationDAO
	RecipeDAO   *dao.RecipeDAO
	Renderers   *render.Registry
}

func (s *ShoppingListService) Build(ctx context.Context, userID uint64) ([]types.ShoppingItem, bool, error) {
	recipeIDs, err := s.RelationDAO.RecipeIDs(ctx, userID, models.RelationShoppingCart)
	if err != nil {
		return nil, false, err
	}
	if len(recipeIDs) == 0 {
		return nil, false, nil
	}

	rows, err := s.RecipeDAO.IngredientsOf(ctx, recipeIDs)
	if err != nil {
		return nil, false, err
	}
	return Aggregate(rows, s.language()), true, nil
}

func (s *ShoppingListService) Export(ctx context.Context, userID uint64, format string) (*render.Document, bool, error) {
	renderer, err := s.Renderers.Get(format)
	if err != nil {
		return nil, false, errs.InvalidField("format", errs.CodeInvalidField, err.Error())
	}

	items, ok, err := s.Build(ctx, userID)
	if err != nil || !ok {
		return nil, ok, err
	}

	doc, err := renderer.Render(items)
	if err != nil {
		return nil, false, fmt.Errorf("render shopping list: %w", err)
	}
	log.L.Info("shopping list exported",
		zap.Uint64("user_id", userID),
		zap.Int("items", len(items)),
		zap.String("file", doc.Filename),
	)
	return doc, true, nil
}

func (s *ShoppingListService) language() language.Tag {
	tag, err := language.Parse(s.Config.ShoppingList.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

type itemKey struct {
	name string
	unit string
}

// Aggregate groups line items by (name, unit), sums their amounts and sorts
// the result by name with the collation rules of lang, then by unit.
// Distinct ingredient rows sharing a name and unit merge into one line.
func Aggregate(rows []models.IngredientAmount, lang language.Tag) []types.ShoppingItem {
	index := make(map[itemKey]int, len(rows))
	items := make([]types.ShoppingItem, 0, len(rows))
	for _, r := range rows {
		key := itemKey{name: r.Name, unit: r.MeasurementUnit}
		if i, ok := index[key]; ok {
			items[i].Amount += r.Amount
			continue
		}
		index[key] = len(items)
		items = append(items, types.ShoppingItem{Name: r.Name, MeasurementUnit: r.MeasurementUnit, Amount: r.Amount})
	}

	col := collate.New(lang)
	slices.SortStableFunc(items, func(a, b types.ShoppingItem) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		if c := col.CompareString(a.MeasurementUnit, b.MeasurementUnit); c != 0 {
			return c
		}
		// collation may treat distinct strings as equal
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.MeasurementUnit, b.MeasurementUnit)
	})
	return items
}
