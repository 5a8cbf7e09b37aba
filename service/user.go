package service

import (
	"context"

	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/errs"
	"Foodgram/types"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	List(ctx context.Context, viewerID uint64, q types.PageQuery) (*types.Page[types.UserProfile], error)
	Get(ctx context.Context, viewerID, userID uint64) (*types.UserProfile, error)
	Me(ctx context.Context, userID uint64) (*types.UserProfile, error)
	// RequireActive loads the caller and rejects inactive accounts.
	RequireActive(ctx context.Context, userID uint64) (*models.User, error)
}

type UserService struct {
	Config    *config.Config
	UsersRepo *dao.Users
	FollowDAO *dao.UserFollowDAO
}

func (s *UserService) List(ctx context.Context, viewerID uint64, q types.PageQuery) (*types.Page[types.UserProfile], error) {
	q, err := normalizePage(q, s.Config.Limits)
	if err != nil {
		return nil, err
	}
	users, total, err := s.UsersRepo.List(ctx, q.Offset(), q.Limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	following, err := s.FollowDAO.FollowingIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	items := make([]types.UserProfile, 0, len(users))
	for _, u := range users {
		items = append(items, toProfile(u, following[u.ID]))
	}
	return &types.Page[types.UserProfile]{Items: items, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func (s *UserService) Get(ctx context.Context, viewerID, userID uint64) (*types.UserProfile, error) {
	user, err := s.UsersRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	subscribed := false
	if viewerID != 0 && viewerID != userID {
		if subscribed, err = s.FollowDAO.IsFollowing(ctx, viewerID, userID); err != nil {
			return nil, err
		}
	}
	profile := toProfile(user, subscribed)
	return &profile, nil
}

func (s *UserService) Me(ctx context.Context, userID uint64) (*types.UserProfile, error) {
	return s.Get(ctx, 0, userID)
}

func (s *UserService) RequireActive(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.UsersRepo.Get(ctx, userID)
	if errs.Is(err, errs.KindNotFound) {
		return nil, errs.Unauthenticated("user of the token does not exist")
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, errs.Forbidden(errs.CodeInactiveUser, "account is inactive")
	}
	return user, nil
}

func toProfile(u *models.User, subscribed bool) types.UserProfile {
	return types.UserProfile{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Avatar:       u.Avatar,
		IsSubscribed: subscribed,
	}
}
