package service

import (
	"context"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/pkg/log"
	"Foodgram/types"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// previewWorkers bounds the per-author recipe queries of one request.
const previewWorkers = 4

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Subscribe(ctx context.Context, followerID, followeeID uint64, previewLimit *int) (*types.Subscription, error)
	Unsubscribe(ctx context.Context, followerID, followeeID uint64) error
	ListSubscriptions(ctx context.Context, userID uint64, q types.SubscriptionQuery) (*types.Page[types.Subscription], error)
}

type FollowService struct {
	Config    *config.Config
	FollowDAO *dao.UserFollowDAO
	UserDAO   *dao.Users
	RecipeDAO *dao.RecipeDAO
}

func (s *FollowService) Subscribe(ctx context.Context, followerID, followeeID uint64, previewLimit *int) (*types.Subscription, error) {
	// 不能关注自己
	if followerID == followeeID {
		return nil, errs.Invalid(errs.CodeSelfSubscribeForbidden, "you cannot subscribe to yourself")
	}
	limit, err := recipesLimit(previewLimit)
	if err != nil {
		return nil, err
	}

	target, err := s.UserDAO.Get(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	if !target.IsActive {
		return nil, errs.Invalid(errs.CodeInactiveTarget, "you cannot subscribe to an inactive user")
	}

	following, err := s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if following {
		return nil, dao.ErrSubscriptionExists()
	}
	if err := s.FollowDAO.Follow(ctx, followerID, followeeID); err != nil {
		return nil, err
	}
	log.L.Info("user followed", zap.Uint64("follower_id", followerID), zap.Uint64("followee_id", followeeID))

	subs, err := s.subscriptions(ctx, []*models.User{target}, limit)
	if err != nil {
		return nil, err
	}
	return &subs[0], nil
}

func (s *FollowService) Unsubscribe(ctx context.Context, followerID, followeeID uint64) error {
	if _, err := s.UserDAO.Get(ctx, followeeID); err != nil {
		return err
	}
	removed, err := s.FollowDAO.Unfollow(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !removed {
		return dao.ErrSubscriptionNotFound()
	}
	log.L.Info("user unfollowed", zap.Uint64("follower_id", followerID), zap.Uint64("followee_id", followeeID))
	return nil
}

// ListSubscriptions 分页返回关注的作者, 最新关注在前
func (s *FollowService) ListSubscriptions(ctx context.Context, userID uint64, q types.SubscriptionQuery) (*types.Page[types.Subscription], error) {
	page, err := normalizePage(q.PageQuery, s.Config.Limits)
	if err != nil {
		return nil, err
	}
	limit, err := recipesLimit(q.RecipesLimit)
	if err != nil {
		return nil, err
	}

	users, total, err := s.FollowDAO.GetFollowingList(ctx, userID, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	subs, err := s.subscriptions(ctx, users, limit)
	if err != nil {
		return nil, err
	}
	return &types.Page[types.Subscription]{Items: subs, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

// subscriptions builds followed-author cards. Every author passed in is
// followed by the caller.
func (s *FollowService) subscriptions(ctx context.Context, authors []*models.User, limit int) ([]types.Subscription, error) {
	ids := make([]uint64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	counts, err := s.RecipeDAO.CountByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	previews := make([][]*models.Recipe, len(authors))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(previewWorkers).WithCancelOnError().WithFirstError()
	for i, a := range authors {
		p.Go(func(ctx context.Context) error {
			recipes, err := s.RecipeDAO.LatestByAuthor(ctx, a.ID, limit)
			if err != nil {
				return err
			}
			previews[i] = recipes
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	subs := make([]types.Subscription, 0, len(authors))
	for i, a := range authors {
		recipes := make([]types.RecipeShort, 0, len(previews[i]))
		for _, r := range previews[i] {
			recipes = append(recipes, toShort(r))
		}
		subs = append(subs, types.Subscription{
			UserProfile:  toProfile(a, true),
			Recipes:      recipes,
			RecipesCount: counts[a.ID],
		})
	}
	return subs, nil
}
