package service

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/log"
	"Foodgram/types"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	List(ctx context.Context) ([]types.Tag, error)
	Get(ctx context.Context, id uint64) (*types.Tag, error)
	Import(ctx context.Context, items []types.TagImport) (*types.ImportResult, error)
}

type TagService struct {
	Config *config.Config
	Tx     *dao.TxManager
	TagDAO *dao.TagDAO
}

func (s *TagService) List(ctx context.Context) ([]types.Tag, error) {
	rows, err := s.TagDAO.List(ctx)
	if err != nil {
		return nil, err
	}
	tags := make([]types.Tag, 0, len(rows))
	for _, t := range rows {
		tags = append(tags, toTag(t))
	}
	return tags, nil
}

func (s *TagService) Get(ctx context.Context, id uint64) (*types.Tag, error) {
	t, err := s.TagDAO.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tag := toTag(t)
	return &tag, nil
}

// Import creates missing tags. An empty slug is derived from the name.
func (s *TagService) Import(ctx context.Context, items []types.TagImport) (*types.ImportResult, error) {
	max := s.Config.Limits.TagMax
	result := &types.ImportResult{}
	err := s.Tx.RunInTx(ctx, func(ctx context.Context) error {
		*result = types.ImportResult{}
		for i, item := range items {
			if item.Name == "" || utf8.RuneCountInString(item.Name) > max {
				return errs.InvalidField("name", errs.CodeInvalidField, fmt.Sprintf("tag %d: name must be 1 to %d characters", i, max))
			}
			tagSlug := item.Slug
			if tagSlug == "" {
				tagSlug = slug.Make(item.Name)
			}
			if len(tagSlug) > max || !slugPattern.MatchString(tagSlug) {
				return errs.InvalidField("slug", errs.CodeInvalidField, fmt.Sprintf("tag %d: invalid slug %q", i, tagSlug))
			}
			_, created, err := s.TagDAO.GetOrCreate(ctx, item.Name, tagSlug)
			if err != nil {
				return err
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
	log.L.Info("tags imported", zap.Int("created", result.Created), zap.Int("existing", result.Existing))
	return result, nil
}

func toTag(t *models.Tag) types.Tag {
	return types.Tag{ID: t.ID, Name: t.Name, Slug: t.Slug}
}
