package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-pos-api/internal/application/inventory"
	"github.com/jhoicas/cafe-pos-api/internal/domain"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

func TestResolver_PlatilloDelMenuGana(t *testing.T) {
	menuRepo := &fakeMenuRepo{items: []*entity.MenuItem{
		{ID: 10, Name: "Latte", RecipeID: i64(1), IsActive: true},
	}}
	// Receta homónima con otro id: no debe usarse si el platillo resuelve
	recipeRepo := &fakeRecipeRepo{recipes: []*entity.Recipe{{ID: 99, Name: "Latte"}}}

	res, err := inventory.NewResolver(logger.Nop()).Resolve(menuRepo, recipeRepo, "Latte")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RecipeID)
	require.NotNil(t, res.MenuItem, "el platillo resuelto debe venir en el resultado")
	assert.Equal(t, int64(10), res.MenuItem.ID)
}

func TestResolver_CaeARecetaPorNombre(t *testing.T) {
	// Platillo sin receta ligada: no resuelve, se busca la receta directa
	menuRepo := &fakeMenuRepo{items: []*entity.MenuItem{
		{ID: 10, Name: "Chilaquiles", IsActive: true},
	}}
	recipeRepo := &fakeRecipeRepo{recipes: []*entity.Recipe{{ID: 3, Name: "Chilaquiles"}}}

	res, err := inventory.NewResolver(logger.Nop()).Resolve(menuRepo, recipeRepo, "Chilaquiles")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.RecipeID)
	assert.NotNil(t, res.MenuItem, "el platillo encontrado acompaña aunque la receta venga por nombre")
}

func TestResolver_PlatilloInactivoNoResuelve(t *testing.T) {
	menuRepo := &fakeMenuRepo{items: []*entity.MenuItem{
		{ID: 10, Name: "Latte", RecipeID: i64(1), IsActive: false},
	}}
	recipeRepo := &fakeRecipeRepo{}

	_, err := inventory.NewResolver(logger.Nop()).Resolve(menuRepo, recipeRepo, "Latte")
	assert.ErrorIs(t, err, domain.ErrRecipeNotResolved)
}

// La búsqueda es por nombre exacto, sensible a mayúsculas: un desajuste de
// texto produce NotResolved, nunca fuzzy matching.
func TestResolver_NombreExactoCaseSensitive(t *testing.T) {
	menuRepo := &fakeMenuRepo{}
	recipeRepo := &fakeRecipeRepo{recipes: []*entity.Recipe{{ID: 3, Name: "Café Americano"}}}
	resolver := inventory.NewResolver(logger.Nop())

	res, err := resolver.Resolve(menuRepo, recipeRepo, "Café Americano")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.RecipeID)

	_, err = resolver.Resolve(menuRepo, recipeRepo, "café americano")
	assert.ErrorIs(t, err, domain.ErrRecipeNotResolved)
}

func TestResolver_SinCoincidencia(t *testing.T) {
	_, err := inventory.NewResolver(logger.Nop()).Resolve(&fakeMenuRepo{}, &fakeRecipeRepo{}, "Inexistente")
	assert.ErrorIs(t, err, domain.ErrRecipeNotResolved)
}
