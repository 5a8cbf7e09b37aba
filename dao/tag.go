package dao

import (
	"context"

	"Foodgram/models"
	"Foodgram/pkg/errs"

	"gorm.io/gorm"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

func (d *TagDAO) Get(ctx context.Context, id uint64) (*models.Tag, error) {
	tag, err := d.FindByID(ctx, id)
	if err != nil {
		return nil, translate("get tag", err, ErrTagNotFound, nil)
	}
	return tag, nil
}

func (d *TagDAO) List(ctx context.Context) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0)
	if err := d.Conn(ctx).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, errs.Infra("list tags", err)
	}
	return tags, nil
}

// GetOrCreate looks a tag up by slug and inserts it when absent.
func (d *TagDAO) GetOrCreate(ctx context.Context, name, slug string) (*models.Tag, bool, error) {
	var tag models.Tag
	res := d.Conn(ctx).
		Where("slug = ?", slug).
		Attrs(models.Tag{Name: name, Slug: slug}).
		FirstOrCreate(&tag)
	if res.Error != nil {
		return nil, false, translate("get or create tag", res.Error, nil, func() *errs.Error {
			return errs.AlreadyExists(errs.CodeTagExists, "tag "+name+" already exists with another slug")
		})
	}
	return &tag, res.RowsAffected > 0, nil
}

func (d *TagDAO) MissingIDs(ctx context.Context, ids []uint64) ([]uint64, error) {
	return missingIDs(ctx, d.Conn(ctx), "tags", ids)
}
