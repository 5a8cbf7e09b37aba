package dao

import (
	"context"
	"strings"

	"Foodgram/models"
	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

type IngredientDAO struct {
	Repo[models.Ingredient]
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{Repo: NewRepo[models.Ingredient](db)}
}

func (d *IngredientDAO) Get(ctx context.Context, id uint64) (*models.Ingredient, error) {
	item, err := d.FindByID(ctx, id)
	if err != nil {
		return nil, translate("get ingredient", err, ErrIngredientNotFound, nil)
	}
	return item, nil
}

// List returns ingredients whose name starts with prefix, ignoring case.
func (d *IngredientDAO) List(ctx context.Context, prefix string) ([]*models.Ingredient, error) {
	items := make([]*models.Ingredient, 0)
	q := d.Conn(ctx).Order("name ASC").Order("id ASC")
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '!'", escapeLike(strings.ToLower(prefix))+"%")
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, errs.Infra("list ingredients", err)
	}
	return items, nil
}

// GetOrCreate returns the oldest row with the same (name, unit) or inserts one.
func (d *IngredientDAO) GetOrCreate(ctx context.Context, name, unit string) (*models.Ingredient, bool, error) {
	var item models.Ingredient
	res := d.Conn(ctx).
		Where("name = ? AND measurement_unit = ?", name, unit).
		Order("id ASC").
		Attrs(models.Ingredient{Name: name, MeasurementUnit: unit}).
		FirstOrCreate(&item)
	if res.Error != nil {
		return nil, false, translate("get or create ingredient", res.Error, nil, nil)
	}
	return &item, res.RowsAffected > 0, nil
}

// MissingIDs returns the ids that have no ingredient row, in input order.
func (d *IngredientDAO) MissingIDs(ctx context.Context, ids []uint64) ([]uint64, error) {
	return missingIDs(ctx, d.Conn(ctx), "ingredients", ids)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`).Replace(s)
}

func missingIDs(ctx context.Context, db *gorm.DB, table string, ids []uint64) ([]uint64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint64
	if err := db.WithContext(ctx).Table(table).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, errs.Infra("lookup "+table, err)
	}
	seen := make(map[uint64]struct{}, len(found))
	for _, id := range found {
		seen[id] = struct{}{}
	}
	var missing []uint64
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
