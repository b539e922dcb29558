package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"recipebook/api/openapi"
	"recipebook/models"
	"recipebook/repository"
)

const recipeNotFound = "Recipe not found"

// List recipes of the signed in user
// (GET /recipes)
func (impl *ServerImpl) GetRecipes(ctx context.Context, request openapi.GetRecipesRequestObject) (openapi.GetRecipesResponseObject, error) {
	const op = "GetRecipes"

	recipes, err := impl.recipes.FindAll(ctx, currentUserID(ctx))
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list recipes, err=%w", op, err)
	}
	return openapi.GetRecipes200JSONResponse(lo.Map(recipes, func(recipe models.Recipe, _ int) openapi.Recipe {
		return toRecipe(&recipe)
	})), nil
}

// Create a recipe
// (POST /recipes)
func (impl *ServerImpl) PostRecipes(ctx context.Context, request openapi.PostRecipesRequestObject) (openapi.PostRecipesResponseObject, error) {
	const op = "PostRecipes"

	info, ok := impl.toInfo(request.Body.Info)
	if !ok {
		return openapi.PostRecipes400JSONResponse{Message: "name should not be empty"}, nil
	}

	// 新建立的食譜不會有圖片，圖片只能透過上傳設定
	recipe := &models.Recipe{
		OwnerID:  currentUserID(ctx),
		Reminder: request.Body.Reminder,
		IsDone:   lo.FromPtr(request.Body.IsDone),
	}
	recipe.SetInfo(info)

	if err := impl.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("[%s] Fail to create recipe, err=%w", op, err)
	}
	return openapi.PostRecipes201JSONResponse(toRecipe(recipe)), nil
}

// Get a recipe
// (GET /recipes/{id})
func (impl *ServerImpl) GetRecipesID(ctx context.Context, request openapi.GetRecipesIDRequestObject) (openapi.GetRecipesIDResponseObject, error) {
	const op = "GetRecipesID"

	recipe, err := impl.recipes.FindOwned(ctx, currentUserID(ctx), request.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.GetRecipesID404JSONResponse{Message: recipeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to find recipe, err=%w", op, err)
	}
	return openapi.GetRecipesID200JSONResponse(toRecipe(recipe)), nil
}

// Update a recipe, info is merged into the stored info
// (PATCH /recipes/{id})
func (impl *ServerImpl) PatchRecipesID(ctx context.Context, request openapi.PatchRecipesIDRequestObject) (openapi.PatchRecipesIDResponseObject, error) {
	const op = "PatchRecipesID"

	patch, ok := impl.toPatch(request.Body.Info)
	if !ok {
		return openapi.PatchRecipesID400JSONResponse{Message: "name should not be empty"}, nil
	}

	recipe, err := impl.recipes.Mutate(ctx, currentUserID(ctx), request.ID, func(recipe *models.Recipe) error {
		// 淺層合併，避免覆蓋掉既有的 info.image
		recipe.SetInfo(recipe.GetInfo().Merge(patch))
		if request.Body.Reminder != nil {
			recipe.Reminder = request.Body.Reminder
		}
		if request.Body.IsDone != nil {
			recipe.IsDone = *request.Body.IsDone
		}
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.PatchRecipesID404JSONResponse{Message: recipeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to update recipe, err=%w", op, err)
	}
	return openapi.PatchRecipesID200JSONResponse(toRecipe(recipe)), nil
}

// Delete a recipe
// (DELETE /recipes/{id})
func (impl *ServerImpl) DeleteRecipesID(ctx context.Context, request openapi.DeleteRecipesIDRequestObject) (openapi.DeleteRecipesIDResponseObject, error) {
	const op = "DeleteRecipesID"

	recipe, err := impl.recipes.Delete(ctx, currentUserID(ctx), request.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.DeleteRecipesID404JSONResponse{Message: recipeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to delete recipe, err=%w", op, err)
	}
	return openapi.DeleteRecipesID200JSONResponse(toRecipe(recipe)), nil
}

// Get a signed url of the recipe image
// (GET /recipes/{id}/image)
func (impl *ServerImpl) GetRecipesIDImage(ctx context.Context, request openapi.GetRecipesIDImageRequestObject) (openapi.GetRecipesIDImageResponseObject, error) {
	const op = "GetRecipesIDImage"

	url, ok, err := impl.recipeImages.SignedURL(ctx, currentUserID(ctx), request.ID, impl.config.Image.URLExpiry)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.GetRecipesIDImage404JSONResponse{Message: recipeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to sign image url, err=%w", op, err)
	}
	// 沒有圖片或簽章失敗時改用預設圖片
	if !ok {
		url = impl.config.Image.PlaceholderURL
	}
	return openapi.GetRecipesIDImage200TextResponse(url), nil
}

// Upload the recipe image
// (POST /recipes/{id}/image)
func (impl *ServerImpl) PostRecipesIDImage(ctx context.Context, request openapi.PostRecipesIDImageRequestObject) (openapi.PostRecipesIDImageResponseObject, error) {
	const op = "PostRecipesIDImage"

	data, err := readImage(request.Body)
	if err != nil {
		return openapi.PostRecipesIDImage400JSONResponse{Message: imageRequestError(err)}, nil
	}

	recipe, err := impl.recipeImages.Upload(ctx, currentUserID(ctx), request.ID, data)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.PostRecipesIDImage404JSONResponse{Message: recipeNotFound}, nil
	}
	if message, ok := uploadErrorMessage(err); ok {
		return openapi.PostRecipesIDImage400JSONResponse{Message: message}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to upload image, err=%w", op, err)
	}
	return openapi.PostRecipesIDImage201JSONResponse(toRecipe(recipe)), nil
}
