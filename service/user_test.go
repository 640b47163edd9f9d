package service

import (
	"Foodgram/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	viewer := f.user(t, "bob")
	author := f.user(t, "alice")
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	older := f.recipe(t, author, "older", base)
	middle := f.recipe(t, author, "middle", base.Add(time.Hour))
	newest := f.recipe(t, author, "newest", base.Add(2*time.Hour))

	got, err := f.users.Subscribe(ctx, viewerOf(viewer), author.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, author.ID, got.ID)
	assert.True(t, got.IsSubscribed)
	assert.EqualValues(t, 3, got.RecipesCount, "recipes_count ignores recipes_limit")
	assert.Equal(t, []types.RecipeMinified{
		{ID: newest.ID, Name: "newest", CookingTime: 10},
		{ID: middle.ID, Name: "middle", CookingTime: 10},
	}, got.Recipes)

	_, err = f.users.Subscribe(ctx, viewerOf(viewer), author.ID, 0)
	assert.ErrorIs(t, err, ErrAlreadyMember)

	uncapped, err := f.users.Subscriptions(ctx, viewerOf(viewer), &types.SubscriptionsRequest{})
	require.NoError(t, err)
	require.Len(t, uncapped.Results, 1)
	assert.Len(t, uncapped.Results[0].Recipes, 3)
	assert.Equal(t, older.ID, uncapped.Results[0].Recipes[2].ID)
}

func TestSubscribeSelfAndUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")

	_, err := f.users.Subscribe(ctx, viewerOf(alice), alice.ID, 0)
	assert.ErrorIs(t, err, ErrSelfReference)

	_, err = f.users.Subscribe(ctx, viewerOf(alice), 9999, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.users.Subscribe(ctx, types.Anonymous, alice.ID, 0)
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.ErrorIs(t, f.users.Unsubscribe(ctx, viewerOf(alice), alice.ID), ErrNotMember)
}

func TestUnsubscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	viewer := f.user(t, "bob")
	author := f.user(t, "alice")

	assert.ErrorIs(t, f.users.Unsubscribe(ctx, viewerOf(viewer), author.ID), ErrNotMember)

	_, err := f.users.Subscribe(ctx, viewerOf(viewer), author.ID, 0)
	require.NoError(t, err)
	require.NoError(t, f.users.Unsubscribe(ctx, viewerOf(viewer), author.ID))

	got, err := f.users.Get(ctx, viewerOf(viewer), author.ID)
	require.NoError(t, err)
	assert.False(t, got.IsSubscribed)
}

func TestUserSubscriptionFlag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	viewer := f.user(t, "bob")
	alice := f.user(t, "alice")
	carol := f.user(t, "carol")

	_, err := f.users.Subscribe(ctx, viewerOf(viewer), alice.ID, 0)
	require.NoError(t, err)

	got, err := f.users.Get(ctx, viewerOf(viewer), alice.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSubscribed)

	got, err = f.users.Get(ctx, types.Anonymous, alice.ID)
	require.NoError(t, err)
	assert.False(t, got.IsSubscribed)

	page, err := f.users.List(ctx, viewerOf(viewer), &types.PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Count)
	flags := map[uint64]bool{}
	for _, u := range page.Results {
		flags[u.ID] = u.IsSubscribed
	}
	assert.Equal(t, map[uint64]bool{viewer.ID: false, alice.ID: true, carol.ID: false}, flags)

	me, err := f.users.Me(ctx, viewerOf(viewer))
	require.NoError(t, err)
	assert.Equal(t, "bob", me.Username)
	assert.False(t, me.IsSubscribed)

	_, err = f.users.Me(ctx, types.Anonymous)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSubscriptionsListing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	viewer := f.user(t, "viewer")
	now := time.Now()

	var followed []uint64
	for _, name := range []string{"a", "b", "c"} {
		u := f.user(t, name)
		f.recipe(t, u, name+"-1", now)
		_, err := f.users.Subscribe(ctx, viewerOf(viewer), u.ID, 0)
		require.NoError(t, err)
		followed = append(followed, u.ID)
	}
	// 未关注的用户不出现在列表中
	stranger := f.user(t, "stranger")
	f.recipe(t, stranger, "s-1", now)

	page, err := f.users.Subscriptions(ctx, viewerOf(viewer), &types.SubscriptionsRequest{
		PageQuery:    types.PageQuery{Page: 1, Limit: 2},
		RecipesLimit: 1,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Count)
	require.Len(t, page.Results, 2)
	require.NotNil(t, page.Next)

	seen := map[uint64]bool{}
	for _, u := range page.Results {
		assert.True(t, u.IsSubscribed)
		assert.EqualValues(t, 1, u.RecipesCount)
		assert.Len(t, u.Recipes, 1)
		seen[u.ID] = true
	}
	assert.NotContains(t, seen, stranger.ID)
	for id := range seen {
		assert.Contains(t, followed, id)
	}

	empty, err := f.users.Subscriptions(ctx, viewerOf(stranger), &types.SubscriptionsRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Results)
	assert.Zero(t, empty.Count)

	_, err = f.users.Subscriptions(ctx, types.Anonymous, &types.SubscriptionsRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
