package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes         = "success get recipes"
	MessageSuccessGetFeaturedRecipes = "success get featured recipes"
	MessageSuccessGetRecipeDetail    = "success get recipe detail"
	MessageSuccessGetRecipeSlugs     = "success get recipe slugs"
	MessageSuccessGetRelatedRecipes  = "success get related recipes"
	MessageSuccessGetCategories      = "success get categories"
	MessageSuccessGetCategoryRecipes = "success get category recipes"
	MessageSuccessGetAuthors         = "success get authors"
	MessageSuccessGetSiteSettings    = "success get site settings"

	MessageFailedGetRecipes         = "failed to get recipes"
	MessageFailedGetRecipeDetail    = "failed to get recipe detail"
	MessageFailedGetRecipeSlugs     = "failed to get recipe slugs"
	MessageFailedGetRelatedRecipes  = "failed to get related recipes"
	MessageFailedGetCategories      = "failed to get categories"
	MessageFailedGetCategoryRecipes = "failed to get category recipes"
	MessageFailedGetAuthors         = "failed to get authors"
	MessageFailedGetSiteSettings    = "failed to get site settings"

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrSiteSettingsNotFound = errors.New("site settings not found")

	ErrStoreUnauthorized = errors.New("content store: unauthorized")
	ErrStorePermission   = errors.New("content store: insufficient permissions")
	ErrStoreNotFound     = errors.New("content store: not found")
)
