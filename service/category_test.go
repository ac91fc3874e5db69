package service

import (
	"AppNotas/models"
	"AppNotas/pkg/database"
	"AppNotas/pkg/response"
	"AppNotas/types"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryNames(categories []*models.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

func TestCategoryService_ListVisible(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@x.com")
	bob := env.register(t, "bob@x.com")

	_, err := env.category.Create(ctx, alice, "Zeta")
	require.NoError(t, err)
	_, err = env.category.Create(ctx, bob, "Bob only")
	require.NoError(t, err)

	list, err := env.category.ListVisible(ctx, alice)
	require.NoError(t, err)
	names := categoryNames(list)

	assert.Len(t, names, len(database.SystemCategories)+1)
	assert.Subset(t, names, database.SystemCategories)
	assert.Contains(t, names, "Zeta")
	assert.NotContains(t, names, "Bob only")
	assert.IsIncreasing(t, names)

	for _, c := range list {
		if c.Name == "Zeta" {
			assert.False(t, c.IsSystem())
		} else {
			assert.True(t, c.IsSystem())
		}
	}
}

func TestCategoryService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@x.com")
	bob := env.register(t, "bob@x.com")

	created, err := env.category.Create(ctx, alice, "  Viajes ")
	require.NoError(t, err)
	assert.Equal(t, "Viajes", created.Name)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, alice, *created.CreatedBy)

	_, err = env.category.Create(ctx, alice, "Viajes")
	assert.True(t, response.IsKind(err, response.KindDuplicate))

	// 不能与系统分类重名
	_, err = env.category.Create(ctx, alice, "Personal")
	assert.True(t, response.IsKind(err, response.KindDuplicate))

	// 其他用户可以使用同名
	_, err = env.category.Create(ctx, bob, "Viajes")
	assert.NoError(t, err)

	for _, name := range []string{"", "   ", strings.Repeat("a", types.CategoryNameMaxLen+1)} {
		_, err = env.category.Create(ctx, alice, name)
		assert.True(t, response.IsKind(err, response.KindValidation), "name %q", name)
	}

	_, err = env.category.Create(ctx, alice, strings.Repeat("ñ", types.CategoryNameMaxLen))
	assert.NoError(t, err)
}

func TestCategoryService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@x.com")
	bob := env.register(t, "bob@x.com")

	c1, err := env.category.Create(ctx, alice, "Uno")
	require.NoError(t, err)
	_, err = env.category.Create(ctx, alice, "Dos")
	require.NoError(t, err)

	updated, err := env.category.Update(ctx, alice, c1.ID, "Primero")
	require.NoError(t, err)
	assert.Equal(t, "Primero", updated.Name)
	assert.Equal(t, c1.ID, updated.ID)

	// 同名不变
	_, err = env.category.Update(ctx, alice, c1.ID, "Primero")
	assert.NoError(t, err)

	_, err = env.category.Update(ctx, alice, c1.ID, "Dos")
	assert.True(t, response.IsKind(err, response.KindDuplicate))
	_, err = env.category.Update(ctx, alice, c1.ID, "Trabajo")
	assert.True(t, response.IsKind(err, response.KindDuplicate))

	// 他人的分类和系统分类都按不存在处理
	_, err = env.category.Update(ctx, bob, c1.ID, "Hack")
	assert.True(t, response.IsKind(err, response.KindNotFound))

	system := systemCategoryID(t, env, "Personal")
	_, err = env.category.Update(ctx, alice, system, "Mio")
	assert.True(t, response.IsKind(err, response.KindNotFound))

	_, err = env.category.Update(ctx, alice, c1.ID, "")
	assert.True(t, response.IsKind(err, response.KindValidation))
}

func TestCategoryService_DeleteKeepsNotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@x.com")
	bob := env.register(t, "bob@x.com")

	c, err := env.category.Create(ctx, alice, "Temporal")
	require.NoError(t, err)
	note, err := env.notes.Create(ctx, alice, &types.NoteInput{
		Title:      "Con categoría",
		Content:    "contenido",
		CategoryID: &c.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, note.CategoryName)
	assert.Equal(t, "Temporal", *note.CategoryName)

	err = env.category.Delete(ctx, bob, c.ID)
	assert.True(t, response.IsKind(err, response.KindNotFound))

	// 失败的删除不应改动笔记
	kept, err := env.notes.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.CategoryID)

	require.NoError(t, env.category.Delete(ctx, alice, c.ID))

	after, err := env.notes.Get(ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Nil(t, after.CategoryID)
	assert.Nil(t, after.CategoryName)
	assert.True(t, after.UpdatedAt.Equal(note.UpdatedAt))

	err = env.category.Delete(ctx, alice, c.ID)
	assert.True(t, response.IsKind(err, response.KindNotFound))

	err = env.category.Delete(ctx, alice, systemCategoryID(t, env, "Ideas"))
	assert.True(t, response.IsKind(err, response.KindNotFound))
}

func systemCategoryID(t *testing.T, env *testEnv, name string) uint64 {
	t.Helper()
	var c models.Category
	require.NoError(t, env.db.Where("name = ? AND created_by IS NULL", name).First(&c).Error)
	return c.ID
}
