package models

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestRecipeInfo_Merge(t *testing.T) {
	base := RecipeInfo{
		Name:    "Com Tam",
		Content: lo.ToPtr("broken rice"),
		Image:   lo.ToPtr("images/1-com-tam-abc12345.avif"),
	}

	tests := []struct {
		name  string
		patch InfoPatch
		want  RecipeInfo
	}{
		{
			name:  "empty patch keeps everything",
			patch: InfoPatch{},
			want:  base,
		},
		{
			name:  "name only keeps image",
			patch: InfoPatch{Name: lo.ToPtr("Pho Bo")},
			want: RecipeInfo{
				Name:    "Pho Bo",
				Content: lo.ToPtr("broken rice"),
				Image:   lo.ToPtr("images/1-com-tam-abc12345.avif"),
			},
		},
		{
			name:  "content only keeps image",
			patch: InfoPatch{Content: lo.ToPtr("")},
			want: RecipeInfo{
				Name:    "Com Tam",
				Content: lo.ToPtr(""),
				Image:   lo.ToPtr("images/1-com-tam-abc12345.avif"),
			},
		},
		{
			name:  "image replaces image",
			patch: InfoPatch{Image: lo.ToPtr("images/1-com-tam-zzzzzzzz.avif")},
			want: RecipeInfo{
				Name:    "Com Tam",
				Content: lo.ToPtr("broken rice"),
				Image:   lo.ToPtr("images/1-com-tam-zzzzzzzz.avif"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Merge(tt.patch))
		})
	}
}

func TestRecipeInfo_ImageKey(t *testing.T) {
	assert.Equal(t, "", RecipeInfo{Name: "x"}.ImageKey())
	assert.Equal(t, "images/a.avif", RecipeInfo{Image: lo.ToPtr("images/a.avif")}.ImageKey())
}

func TestRecipe_SetInfo(t *testing.T) {
	recipe := &Recipe{ID: 3, OwnerID: 9}
	recipe.SetInfo(RecipeInfo{Name: "Banh Trang"})

	assert.Equal(t, uint(3), recipe.GetID())
	assert.Equal(t, uint(9), recipe.GetOwnerID())
	assert.Equal(t, "Banh Trang", recipe.GetInfo().Name)
}
