package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/log"
	"Foodgram/types"

	"go.uber.org/zap"
)

var _ IIngredientService = (*IngredientService)(nil)

type IIngredientService interface {
	List(ctx context.Context, prefix string) ([]types.Ingredient, error)
	Get(ctx context.Context, id uint64) (*types.Ingredient, error)
	GetOrCreate(ctx context.Context, name, unit string) (*types.Ingredient, bool, error)
	Import(ctx context.Context, items []types.IngredientImport) (*types.ImportResult, error)
}

type IngredientService struct {
	Config        *config.Config
	Tx            *dao.TxManager
	IngredientDAO *dao.IngredientDAO
}

func (s *IngredientService) List(ctx context.Context, prefix string) ([]types.Ingredient, error) {
	rows, err := s.IngredientDAO.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	items := make([]types.Ingredient, 0, len(rows))
	for _, r := range rows {
		items = append(items, types.Ingredient{ID: r.ID, Name: r.Name, MeasurementUnit: r.MeasurementUnit})
	}
	return items, nil
}

func (s *IngredientService) Get(ctx context.Context, id uint64) (*types.Ingredient, error) {
	r, err := s.IngredientDAO.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &types.Ingredient{ID: r.ID, Name: r.Name, MeasurementUnit: r.MeasurementUnit}, nil
}

// GetOrCreate 按名称和单位查找食材, 不存在则创建
func (s *IngredientService) GetOrCreate(ctx context.Context, name, unit string) (*types.Ingredient, bool, error) {
	limits := s.Config.Limits
	if name == "" || utf8.RuneCountInString(name) > limits.IngredientNameMax {
		return nil, false, errs.InvalidField("name", errs.CodeInvalidField,
			fmt.Sprintf("ingredient name must be 1 to %d characters", limits.IngredientNameMax))
	}
	if unit == "" || utf8.RuneCountInString(unit) > limits.MeasurementUnitMax {
		return nil, false, errs.InvalidField("measurement_unit", errs.CodeInvalidField,
			fmt.Sprintf("measurement unit must be 1 to %d characters", limits.MeasurementUnitMax))
	}
	r, created, err := s.IngredientDAO.GetOrCreate(ctx, name, unit)
	if err != nil {
		return nil, false, err
	}
	return &types.Ingredient{ID: r.ID, Name: r.Name, MeasurementUnit: r.MeasurementUnit}, created, nil
}

// Import loads all items in one transaction; any invalid item aborts the run.
func (s *IngredientService) Import(ctx context.Context, items []types.IngredientImport) (*types.ImportResult, error) {
	result := &types.ImportResult{}
	err := s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		*result = types.ImportResult{}
		for i, item := range items {
			_, created, err := s.GetOrCreate(ctx, item.Name, item.MeasurementUnit)
			if err != nil {
				return fmt.Errorf("ingredient %d (%q): %w", i, item.Name, err)
			}
			if created {
				result.Created++
			} else {
				result.Existing++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.L.Info("ingredients imported", zap.Int("created", result.Created), zap.Int("existing", result.Existing))
	return result, nil
}
