package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewFavoriteSet,
	NewCartSet,
	NewSubscriptionSet,
	NewShortCodeGenerator,

	wire.Struct(new(AggregationView), "*"),

	wire.Struct(new(RecipeService), "*"),
	wire.Bind(new(IRecipeService), new(*RecipeService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(ShortLinkService), "*"),
	wire.Bind(new(IShortLinkService), new(*ShortLinkService)),

	wire.Struct(new(ShoppingListService), "*"),
	wire.Bind(new(IShoppingListService), new(*ShoppingListService)),

	wire.Struct(new(SeedService), "*"),
	wire.Bind(new(ISeedService), new(*SeedService)),
)
