package api

import (
	"strings"

	"recipebook/api/openapi"
	"recipebook/models"
)

// toInfo 整理新建立的 info，name 去除前後空白，content 經過 HTML 過濾
func (impl *ServerImpl) toInfo(req openapi.CreateInfo) (models.RecipeInfo, bool) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.RecipeInfo{}, false
	}
	return models.RecipeInfo{
		Name:    name,
		Content: impl.sanitize(req.Content),
	}, true
}

// toPatch 整理 info 的部分更新，永遠不包含 image
func (impl *ServerImpl) toPatch(req *openapi.UpdateInfo) (models.InfoPatch, bool) {
	if req == nil {
		return models.InfoPatch{}, true
	}

	var patch models.InfoPatch
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.InfoPatch{}, false
		}
		patch.Name = &name
	}
	patch.Content = impl.sanitize(req.Content)
	return patch, true
}

func (impl *ServerImpl) sanitize(content *string) *string {
	if content == nil {
		return nil
	}
	sanitized := strings.TrimSpace(impl.htmlChecker.Sanitize(*content))
	return &sanitized
}

func toRecipeInfo(info models.RecipeInfo) openapi.RecipeInfo {
	return openapi.RecipeInfo{
		Name:    info.Name,
		Content: info.Content,
		Image:   info.Image,
	}
}

func toRecipe(recipe *models.Recipe) openapi.Recipe {
	return openapi.Recipe{
		ID:        recipe.ID,
		OwnerID:   recipe.OwnerID,
		Info:      toRecipeInfo(recipe.GetInfo()),
		Reminder:  recipe.Reminder,
		IsDone:    recipe.IsDone,
		CreatedAt: recipe.CreatedAt,
		UpdatedAt: recipe.UpdatedAt,
	}
}

func toSavedRecipe(saved *models.SavedRecipe) openapi.SavedRecipe {
	return openapi.SavedRecipe{
		ID:        saved.ID,
		OwnerID:   saved.OwnerID,
		Info:      toRecipeInfo(saved.GetInfo()),
		CreatedAt: saved.CreatedAt,
		UpdatedAt: saved.UpdatedAt,
	}
}

func toUser(user *models.User) openapi.User {
	return openapi.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
