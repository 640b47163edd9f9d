package service

import (
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/pkg/log"
	"Foodgram/types"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// MembershipStore 唯一二元关系的持久化，唯一性由存储层保证
type MembershipStore interface {
	Insert(ctx context.Context, subject, object uint64) (bool, error)
	Delete(ctx context.Context, subject, object uint64) (bool, error)
	ObjectIDs(ctx context.Context, subject uint64) ([]uint64, error)
}

// MembershipKind 关系类型：缓存键名、错误文案、是否禁止指向自己
type MembershipKind struct {
	Name         string
	ForbidSelf   bool
	AlreadyMsg   string
	NotMemberMsg string
}

var (
	FavoriteKind = MembershipKind{
		Name:         "favorite",
		AlreadyMsg:   "食谱已在收藏中",
		NotMemberMsg: "食谱不在收藏中",
	}
	CartKind = MembershipKind{
		Name:         "cart",
		AlreadyMsg:   "食谱已在购物车中",
		NotMemberMsg: "食谱不在购物车中",
	}
	SubscriptionKind = MembershipKind{
		Name:         "subscription",
		ForbidSelf:   true,
		AlreadyMsg:   "已关注该用户",
		NotMemberMsg: "未关注该用户",
	}
)

// MembershipSet 收藏 / 购物车 / 关注的通用实现
type MembershipSet struct {
	Kind  MembershipKind
	Store MembershipStore
	Cache *cache.MembershipStorage
}

func NewMembershipSet(kind MembershipKind, store MembershipStore, c *cache.MembershipStorage) *MembershipSet {
	return &MembershipSet{Kind: kind, Store: store, Cache: c}
}

// Add 建立关系，已存在返回 ErrAlreadyMember
func (s *MembershipSet) Add(ctx context.Context, subject, object uint64) error {
	if s.Kind.ForbidSelf && subject == object {
		return ErrSelfReference
	}
	created, err := s.Store.Insert(ctx, subject, object)
	if err != nil {
		return fmt.Errorf("insert %s: %w", s.Kind.Name, err)
	}
	if !created {
		return &Error{Kind: KindAlreadyMember, Msg: s.Kind.AlreadyMsg}
	}
	s.invalidate(ctx, subject)
	return nil
}

// Remove 解除关系，不存在返回 ErrNotMember
func (s *MembershipSet) Remove(ctx context.Context, subject, object uint64) error {
	deleted, err := s.Store.Delete(ctx, subject, object)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.Kind.Name, err)
	}
	if !deleted {
		return &Error{Kind: KindNotMember, Msg: s.Kind.NotMemberMsg}
	}
	s.invalidate(ctx, subject)
	return nil
}

// Members 观察者的完整关系集合，每个请求只查询一次，匿名返回空集合
func (s *MembershipSet) Members(ctx context.Context, viewer types.Viewer) (IDSet, error) {
	if viewer.IsAnonymous() {
		return IDSet{}, nil
	}

	ids, ok, err := s.Cache.Members(ctx, s.Kind.Name, viewer.ID)
	if err != nil {
		log.L.Warn("membership cache read failed", zap.String("kind", s.Kind.Name), zap.Error(err))
	}
	if ok {
		return NewIDSet(ids...), nil
	}

	// 版本号必须在读库之前取得，读库之后提交的写操作会使其失效
	version, verErr := s.Cache.Version(ctx, s.Kind.Name, viewer.ID)
	if verErr != nil {
		log.L.Warn("membership cache version read failed", zap.String("kind", s.Kind.Name), zap.Error(verErr))
	}

	ids, err = s.Store.ObjectIDs(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Kind.Name, err)
	}
	if verErr == nil {
		if _, err := s.Cache.Store(ctx, s.Kind.Name, viewer.ID, version, ids); err != nil {
			log.L.Warn("membership cache write failed", zap.String("kind", s.Kind.Name), zap.Error(err))
		}
	}
	return NewIDSet(ids...), nil
}

func (s *MembershipSet) invalidate(ctx context.Context, subject uint64) {
	if err := s.Cache.Invalidate(ctx, s.Kind.Name, subject); err != nil {
		log.L.Warn("membership cache invalidate failed",
			zap.String("kind", s.Kind.Name),
			zap.Uint64("subject", subject),
			zap.Error(err),
		)
	}
}

// IDSet 只读 ID 集合
type IDSet map[uint64]struct{}

func NewIDSet(ids ...uint64) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s IDSet) Has(id uint64) bool {
	_, ok := s[id]
	return ok
}

// Slice 升序输出
func (s IDSet) Slice() []uint64 {
	ids := make([]uint64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Intersect 两个集合的交集
func (s IDSet) Intersect(other IDSet) IDSet {
	out := make(IDSet)
	for id := range s {
		if other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

type FavoriteSet struct {
	*MembershipSet
}

func NewFavoriteSet(d *dao.FavoriteDAO, c *cache.MembershipStorage) *FavoriteSet {
	return &FavoriteSet{NewMembershipSet(FavoriteKind, d, c)}
}

type CartSet struct {
	*MembershipSet
}

func NewCartSet(d *dao.CartDAO, c *cache.MembershipStorage) *CartSet {
	return &CartSet{NewMembershipSet(CartKind, d, c)}
}

type SubscriptionSet struct {
	*MembershipSet
}

func NewSubscriptionSet(d *dao.SubscriptionDAO, c *cache.MembershipStorage) *SubscriptionSet {
	return &SubscriptionSet{NewMembershipSet(SubscriptionKind, d, c)}
}
