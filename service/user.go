package service

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/types"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	List(ctx context.Context, viewer types.Viewer, req *types.PageQuery) (*types.Page[types.User], error)
	Get(ctx context.Context, viewer types.Viewer, userID uint64) (*types.User, error)
	Me(ctx context.Context, viewer types.Viewer) (*types.User, error)
	Subscriptions(ctx context.Context, viewer types.Viewer, req *types.SubscriptionsRequest) (*types.Page[*types.UserWithRecipes], error)
	Subscribe(ctx context.Context, viewer types.Viewer, userID uint64, recipesLimit int) (*types.UserWithRecipes, error)
	Unsubscribe(ctx context.Context, viewer types.Viewer, userID uint64) error
}

type UserService struct {
	Config    *config.Config
	Users     *dao.Users
	Following *SubscriptionSet
	View      *AggregationView
}

// List 用户列表，附带观察者的关注标记
func (s *UserService) List(ctx context.Context, viewer types.Viewer, req *types.PageQuery) (*types.Page[types.User], error) {
	limit, offset := req.Normalize(s.Config.Pagination.DefaultLimit, s.Config.Pagination.MaxLimit)
	users, total, err := s.Users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	subs, err := s.Following.Members(ctx, viewer)
	if err != nil {
		return nil, err
	}
	items := make([]types.User, 0, len(users))
	for _, u := range users {
		items = append(items, UserView(u, subs))
	}
	return types.NewPage(items, total, limit, offset), nil
}

func (s *UserService) Get(ctx context.Context, viewer types.Viewer, userID uint64) (*types.User, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	subs, err := s.Following.Members(ctx, viewer)
	if err != nil {
		return nil, err
	}
	item := UserView(user, subs)
	return &item, nil
}

// Me 当前用户，自己不能关注自己，IsSubscribed 恒为 false
func (s *UserService) Me(ctx context.Context, viewer types.Viewer) (*types.User, error) {
	if viewer.IsAnonymous() {
		return nil, ErrUnauthorized
	}
	user, err := s.find(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	item := UserView(user, IDSet{})
	return &item, nil
}

// Subscriptions 观察者关注的用户，每人附带最近的食谱与食谱总数
func (s *UserService) Subscriptions(ctx context.Context, viewer types.Viewer, req *types.SubscriptionsRequest) (*types.Page[*types.UserWithRecipes], error) {
	if viewer.IsAnonymous() {
		return nil, ErrUnauthorized
	}
	limit, offset := req.Normalize(s.Config.Pagination.DefaultLimit, s.Config.Pagination.MaxLimit)

	subs, err := s.Following.Members(ctx, viewer)
	if err != nil {
		return nil, err
	}
	users, total, err := s.Users.ListByIDs(ctx, subs.Slice(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	items, err := s.View.UsersWithRecipes(ctx, users, subs, req.RecipesLimit)
	if err != nil {
		return nil, err
	}
	return types.NewPage(items, total, limit, offset), nil
}

// Subscribe 关注用户，返回被关注者及其食谱
func (s *UserService) Subscribe(ctx context.Context, viewer types.Viewer, userID uint64, recipesLimit int) (*types.UserWithRecipes, error) {
	if viewer.IsAnonymous() {
		return nil, ErrUnauthorized
	}
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Following.Add(ctx, viewer.ID, user.ID); err != nil {
		return nil, err
	}
	items, err := s.View.UsersWithRecipes(ctx, []*models.User{user}, NewIDSet(user.ID), recipesLimit)
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *UserService) Unsubscribe(ctx context.Context, viewer types.Viewer, userID uint64) error {
	if viewer.IsAnonymous() {
		return ErrUnauthorized
	}
	if _, err := s.find(ctx, userID); err != nil {
		return err
	}
	return s.Following.Remove(ctx, viewer.ID, userID)
}

func (s *UserService) find(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.Users.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNotFound, "用户不存在")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
