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

const savedRecipeNotFound = "Saved recipe not found"

// List saved recipes of the signed in user
// (GET /saved-recipes)
func (impl *ServerImpl) GetSavedRecipes(ctx context.Context, request openapi.GetSavedRecipesRequestObject) (openapi.GetSavedRecipesResponseObject, error) {
	const op = "GetSavedRecipes"

	saved, err := impl.savedRecipes.FindAll(ctx, currentUserID(ctx))
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list saved recipes, err=%w", op, err)
	}
	return openapi.GetSavedRecipes200JSONResponse(lo.Map(saved, func(s models.SavedRecipe, _ int) openapi.SavedRecipe {
		return toSavedRecipe(&s)
	})), nil
}

// Save a recipe
// (POST /saved-recipes)
func (impl *ServerImpl) PostSavedRecipes(ctx context.Context, request openapi.PostSavedRecipesRequestObject) (openapi.PostSavedRecipesResponseObject, error) {
	const op = "PostSavedRecipes"

	info, ok := impl.toInfo(request.Body.Info)
	if !ok {
		return openapi.PostSavedRecipes400JSONResponse{Message: "name should not be empty"}, nil
	}

	saved := &models.SavedRecipe{OwnerID: currentUserID(ctx)}
	saved.SetInfo(info)
	if err := impl.savedRecipes.Create(ctx, saved); err != nil {
		return nil, fmt.Errorf("[%s] Fail to create saved recipe, err=%w", op, err)
	}
	return openapi.PostSavedRecipes201JSONResponse(toSavedRecipe(saved)), nil
}

// Get a saved recipe
// (GET /saved-recipes/{id})
func (impl *ServerImpl) GetSavedRecipesID(ctx context.Context, request openapi.GetSavedRecipesIDRequestObject) (openapi.GetSavedRecipesIDResponseObject, error) {
	const op = "GetSavedRecipesID"

	saved, err := impl.savedRecipes.FindOwned(ctx, currentUserID(ctx), request.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.GetSavedRecipesID404JSONResponse{Message: savedRecipeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to find saved recipe, err=%w", op, err)
	}
	return openapi.GetSavedRecipesID200JSONResponse(toSavedRecipe(saved)), nil
}

// Update a saved recipe
// (PATCH /saved-recipes/{id})
func (impl *ServerImpl) PatchSavedRecipesID(ctx context.Context, request openapi.PatchSavedRecipesIDRequestObject) (openapi.PatchSavedRecipesIDResponseObject, error) {
	const op = "PatchSavedRecipesID"

	patch, ok := impl.toPatch(request.Body.Info)
	if !ok {
		return openapi.PatchSavedRecipesID400JSONResponse{Message: "name should not be empty"}, nil
	}

	saved, err := impl.savedRecipes.UpdateInfo(ctx, currentUserID(ctx), request.ID, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.PatchSavedRecipesID404JSONResponse{Message: savedRecipeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to update saved recipe, err=%w", op, err)
	}
	return openapi.PatchSavedRecipesID200JSONResponse(toSavedRecipe(saved)), nil
}

// Delete a saved recipe
// (DELETE /saved-recipes/{id})
func (impl *ServerImpl) DeleteSavedRecipesID(ctx context.Context, request openapi.DeleteSavedRecipesIDRequestObject) (openapi.DeleteSavedRecipesIDResponseObject, error) {
	const op = "DeleteSavedRecipesID"

	saved, err := impl.savedRecipes.Delete(ctx, currentUserID(ctx), request.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.DeleteSavedRecipesID404JSONResponse{Message: savedRecipeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to delete saved recipe, err=%w", op, err)
	}
	return openapi.DeleteSavedRecipesID200JSONResponse(toSavedRecipe(saved)), nil
}

// Get a signed url of the saved recipe image
// (GET /saved-recipes/{id}/image)
func (impl *ServerImpl) GetSavedRecipesIDImage(ctx context.Context, request openapi.GetSavedRecipesIDImageRequestObject) (openapi.GetSavedRecipesIDImageResponseObject, error) {
	const op = "GetSavedRecipesIDImage"

	url, ok, err := impl.savedImages.SignedURL(ctx, currentUserID(ctx), request.ID, impl.config.Image.URLExpiry)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.GetSavedRecipesIDImage404JSONResponse{Message: savedRecipeNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to sign image url, err=%w", op, err)
	}
	if !ok {
		url = impl.config.Image.PlaceholderURL
	}
	return openapi.GetSavedRecipesIDImage200TextResponse(url), nil
}

// Upload the saved recipe image
// (POST /saved-recipes/{id}/image)
func (impl *ServerImpl) PostSavedRecipesIDImage(ctx context.Context, request openapi.PostSavedRecipesIDImageRequestObject) (openapi.PostSavedRecipesIDImageResponseObject, error) {
	const op = "PostSavedRecipesIDImage"

	data, err := readImage(request.Body)
	if err != nil {
		return openapi.PostSavedRecipesIDImage400JSONResponse{Message: imageRequestError(err)}, nil
	}

	saved, err := impl.savedImages.Upload(ctx, currentUserID(ctx), request.ID, data)
	if errors.Is(err, repository.ErrNotFound) {
		return openapi.PostSavedRecipesIDImage404JSONResponse{Message: savedRecipeNotFound}, nil
	}
	if message, ok := uploadErrorMessage(err); ok {
		return openapi.PostSavedRecipesIDImage400JSONResponse{Message: message}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to upload image, err=%w", op, err)
	}
	return openapi.PostSavedRecipesIDImage201JSONResponse(toSavedRecipe(saved)), nil
}
