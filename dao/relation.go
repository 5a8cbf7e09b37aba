package dao

import (
	"context"

	"Foodgram/models"
	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

// RelationDAO stores favorite and shopping cart links in one table.
type RelationDAO struct {
	Repo[models.RecipeRelation]
}

func NewRelationDAO(db *gorm.DB) *RelationDAO {
	return &RelationDAO{Repo: NewRepo[models.RecipeRelation](db)}
}

func (d *RelationDAO) Exists(ctx context.Context, userID, recipeID uint64, kind models.RelationKind) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind)
}

// Create inserts the link. A concurrent duplicate surfaces as AlreadyExists
// through the unique index.
func (d *RelationDAO) Create(ctx context.Context, userID, recipeID uint64, kind models.RelationKind) error {
	rel := &models.RecipeRelation{UserID: userID, RecipeID: recipeID, Kind: kind}
	err := d.Conn(ctx).Create(rel).Error
	return translate("create relation", err, nil, func() *errs.Error { return ErrRelationExists(kind) })
}

// Remove reports whether a link was deleted.
func (d *RelationDAO) Remove(ctx context.Context, userID, recipeID uint64, kind models.RelationKind) (bool, error) {
	n, err := d.Delete(ctx, "user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RecipeIDs 查询用户某类关系下的全部菜谱 id
func (d *RelationDAO) RecipeIDs(ctx context.Context, userID uint64, kind models.RelationKind) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Model(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("id ASC").
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, errs.Infra("load relation ids", err)
	}
	return ids, nil
}
