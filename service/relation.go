package service

import (
	"context"

	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/log"
	"Foodgram/types"

	"go.uber.org/zap"
)

var _ IRelationService = (*RelationService)(nil)

type IRelationService interface {
	// Add links the recipe to the user and returns its short form.
	Add(ctx context.Context, userID, recipeID uint64, kind models.RelationKind) (*types.RecipeShort, error)
	Remove(ctx context.Context, userID, recipeID uint64, kind models.RelationKind) error
	// Status reports, for each recipe id, whether the user holds the relation.
	Status(ctx context.Context, userID uint64, kind models.RelationKind, recipeIDs []uint64) (map[uint64]bool, error)
}

type RelationService struct {
	RelationDAO *dao.RelationDAO
	RecipeDAO   *dao.RecipeDAO
	Cache       cache.RelationCache
}

func (s *RelationService) Add(ctx context.Context, userID, recipeID uint64, kind models.RelationKind) (*types.RecipeShort, error) {
	if !kind.Valid() {
		return nil, errs.Invalid(errs.CodeInvalidField, "unknown relation kind")
	}
	recipe, err := s.RecipeDAO.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.RelationDAO.Exists(ctx, userID, recipeID, kind)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, dao.ErrRelationExists(kind)
	}
	if err := s.RelationDAO.Create(ctx, userID, recipeID, kind); err != nil {
		return nil, err
	}

	if err := s.Cache.Add(ctx, userID, kind, recipeID); err != nil {
		log.L.Warn("relation cache add failed", zap.Uint64("user_id", userID), zap.String("kind", string(kind)), zap.Error(err))
	}
	log.L.Info("relation added", zap.Uint64("user_id", userID), zap.Uint64("recipe_id", recipeID), zap.String("kind", string(kind)))

	short := toShort(recipe)
	return &short, nil
}

func (s *RelationService) Remove(ctx context.Context, userID, recipeID uint64, kind models.RelationKind) error {
	if !kind.Valid() {
		return errs.Invalid(errs.CodeInvalidField, "unknown relation kind")
	}
	if _, err := s.RecipeDAO.Get(ctx, recipeID); err != nil {
		return err
	}

	removed, err := s.RelationDAO.Remove(ctx, userID, recipeID, kind)
	if err != nil {
		return err
	}
	if !removed {
		return dao.ErrRelationNotFound(kind)
	}

	if err := s.Cache.Remove(ctx, userID, kind, recipeID); err != nil {
		log.L.Warn("relation cache remove failed", zap.Uint64("user_id", userID), zap.String("kind", string(kind)), zap.Error(err))
	}
	log.L.Info("relation removed", zap.Uint64("user_id", userID), zap.Uint64("recipe_id", recipeID), zap.String("kind", string(kind)))
	return nil
}

func (s *RelationService) Status(ctx context.Context, userID uint64, kind models.RelationKind, recipeIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return result, nil
	}
	set, err := s.members(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	for _, id := range recipeIDs {
		_, ok := set[id]
		result[id] = ok
	}
	return result, nil
}

// members 先查缓存, 未命中或缓存异常时查库并回填; 期间有写入时回填被丢弃
func (s *RelationService) members(ctx context.Context, userID uint64, kind models.RelationKind) (map[uint64]struct{}, error) {
	ids, version, warm, err := s.Cache.Members(ctx, userID, kind)
	if err == nil && warm {
		return ids, nil
	}
	if err != nil {
		log.L.Warn("relation cache unavailable", zap.Uint64("user_id", userID), zap.Error(err))
	}

	list, err := s.RelationDAO.RecipeIDs(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	set := make(map[uint64]struct{}, len(list))
	for _, id := range list {
		set[id] = struct{}{}
	}
	if err := s.Cache.Fill(ctx, userID, kind, version, list); err != nil {
		log.L.Warn("relation cache fill failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return set, nil
}

func toShort(r *models.Recipe) types.RecipeShort {
	return types.RecipeShort{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}
