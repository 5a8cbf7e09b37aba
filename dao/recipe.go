package dao

import (
	"context"

	"Foodgram/models"
	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

type RecipeDAO struct {
	Repo[models.Recipe]
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{Repo: NewRepo[models.Recipe](db)}
}

// RecipeFilter narrows List. Zero values disable a filter.
type RecipeFilter struct {
	AuthorID    uint64
	TagSlugs    []string
	FavoritedBy uint64
	InCartOf    uint64
	Offset      int
	Limit       int
}

func (d *RecipeDAO) Get(ctx context.Context, id uint64) (*models.Recipe, error) {
	recipe, err := d.FindByID(ctx, id)
	if err != nil {
		return nil, translate("get recipe", err, ErrRecipeNotFound, nil)
	}
	return recipe, nil
}

func (d *RecipeDAO) Exists(ctx context.Context, id uint64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}

// List 按创建时间倒序分页查询
func (d *RecipeDAO) List(ctx context.Context, f RecipeFilter) ([]*models.Recipe, int64, error) {
	q := d.Model(ctx)
	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		sub := d.Conn(ctx).Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", f.TagSlugs)
		q = q.Where("id IN (?)", sub)
	}
	if f.FavoritedBy != 0 {
		q = q.Where("id IN (?)", d.relationSub(ctx, f.FavoritedBy, models.RelationFavorite))
	}
	if f.InCartOf != 0 {
		q = q.Where("id IN (?)", d.relationSub(ctx, f.InCartOf, models.RelationShoppingCart))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errs.Infra("count recipes", err)
	}

	recipes := make([]*models.Recipe, 0, f.Limit)
	err := q.Order("created_at DESC").Order("id DESC").Offset(f.Offset).Limit(f.Limit).Find(&recipes).Error
	if err != nil {
		return nil, 0, errs.Infra("list recipes", err)
	}
	return recipes, total, nil
}

func (d *RecipeDAO) relationSub(ctx context.Context, userID uint64, kind models.RelationKind) *gorm.DB {
	return d.Conn(ctx).Model(&models.RecipeRelation{}).
		Select("recipe_id").
		Where("user_id = ? AND kind = ?", userID, kind)
}

// Save writes the recipe row and replaces its tag links and line items in
// one transaction.
func (d *RecipeDAO) Save(ctx context.Context, recipe *models.Recipe, tagIDs []uint64, items []models.RecipeIngredient, create bool) error {
	err := d.Conn(ctx).Transaction(func(tx *gorm.DB) error {
		if create {
			if err := tx.Create(recipe).Error; err != nil {
				return err
			}
		} else {
			err := tx.Model(&models.Recipe{}).
				Where("id = ?", recipe.ID).
				Select("name", "image", "text", "cooking_time").
				Updates(recipe).Error
			if err != nil {
				return err
			}
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		links := make([]models.RecipeTag, 0, len(tagIDs))
		for _, id := range tagIDs {
			links = append(links, models.RecipeTag{RecipeID: recipe.ID, TagID: id})
		}
		if len(links) > 0 {
			if err := tx.CreateInBatches(links, 100).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		rows := make([]models.RecipeIngredient, 0, len(items))
		for _, item := range items {
			rows = append(rows, models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: item.IngredientID, Amount: item.Amount})
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translate("save recipe", err, ErrRecipeNotFound, nil)
}

// Delete removes the recipe with its line items, tag links and relations.
func (d *RecipeDAO) Delete(ctx context.Context, id uint64) error {
	err := d.Conn(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.RecipeRelation{}, &models.RecipeTag{}, &models.RecipeIngredient{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&models.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate("delete recipe", err, ErrRecipeNotFound, nil)
}

// IngredientsOf returns the line items of the recipes joined with their
// ingredient, ordered by recipe then line id.
func (d *RecipeDAO) IngredientsOf(ctx context.Context, recipeIDs []uint64) ([]models.IngredientAmount, error) {
	rows := make([]models.IngredientAmount, 0)
	if len(recipeIDs) == 0 {
		return rows, nil
	}
	err := d.Conn(ctx).Table("recipe_ingredients AS ri").
		Select("ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount").
		Joins("JOIN ingredients AS i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id IN ?", recipeIDs).
		Order("ri.recipe_id ASC").Order("ri.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.Infra("load recipe ingredients", err)
	}
	return rows, nil
}

func (d *RecipeDAO) TagsOf(ctx context.Context, recipeIDs []uint64) ([]models.RecipeTagRow, error) {
	rows := make([]models.RecipeTagRow, 0)
	if len(recipeIDs) == 0 {
		return rows, nil
	}
	err := d.Conn(ctx).Table("recipe_tags AS rt").
		Select("rt.recipe_id, t.id, t.name, t.slug").
		Joins("JOIN tags AS t ON t.id = rt.tag_id").
		Where("rt.recipe_id IN ?", recipeIDs).
		Order("rt.recipe_id ASC").Order("t.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.Infra("load recipe tags", err)
	}
	return rows, nil
}

// CountByAuthors 统计每个作者的菜谱数
func (d *RecipeDAO) CountByAuthors(ctx context.Context, authorIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		AuthorID uint64
		Total    int64
	}
	err := d.Model(ctx).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.Infra("count recipes by author", err)
	}
	for _, r := range rows {
		counts[r.AuthorID] = r.Total
	}
	return counts, nil
}

// LatestByAuthor returns the newest recipes of an author. A negative limit
// means no limit.
func (d *RecipeDAO) LatestByAuthor(ctx context.Context, authorID uint64, limit int) ([]*models.Recipe, error) {
	recipes := make([]*models.Recipe, 0)
	if limit == 0 {
		return recipes, nil
	}
	q := d.Conn(ctx).Where("author_id = ?", authorID).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, errs.Infra("latest recipes by author", err)
	}
	return recipes, nil
}
