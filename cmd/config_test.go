package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarlson/go-taskcli/internal/config"
)

func TestConfigCommand(t *testing.T) {
	t.Run("add-category", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		out, err := runCmd(t, "", "config", "add-category", "  Health ")
		require.NoError(t, err)
		assert.Contains(t, out, "Category 'Health' added successfully!")

		cat, ok := loadBoard(t, dir).Category("health")
		require.True(t, ok)
		assert.Equal(t, config.Option{ID: "health", Label: "Health", Color: "gray"}, cat)

		out, err = runCmd(t, "", "config", "add-category", "HEALTH")
		require.NoError(t, err)
		assert.Contains(t, out, "Category 'health' already exists.")
		assert.Len(t, loadBoard(t, dir).Categories, 4)
	})

	t.Run("add-category rejects a blank name", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		_, err := runCmd(t, "", "config", "add-category", " ")
		require.Error(t, err)
		assert.Len(t, loadBoard(t, dir).Categories, 3)
	})

	t.Run("language", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		out, err := runCmd(t, "", "config", "language", "pt")
		require.NoError(t, err)
		assert.Contains(t, out, "Idioma definido para")
		assert.Equal(t, "pt-BR", loadBoard(t, dir).Language)

		_, err = runCmd(t, "", "config", "language", "klingon")
		require.Error(t, err)
	})

	t.Run("show", func(t *testing.T) {
		setupBoard(t, "en-US")

		out, err := runCmd(t, "", "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "Statuses")
		assert.Contains(t, out, "To Do (todo, red)")
		assert.Contains(t, out, "Work (work, blue)")
		assert.Contains(t, out, "High (high, red)")
	})

	t.Run("menu", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		stdin := "1\nGames\n2\n2\n3\n4\n"
		out, err := runCmd(t, stdin, "config")
		require.NoError(t, err)

		assert.Contains(t, out, "Category 'Games' added successfully!")
		assert.Contains(t, out, "Idioma definido para")
		assert.Contains(t, out, "Categorias")
		assert.Contains(t, out, "Saindo da configuração.")

		board := loadBoard(t, dir)
		assert.Equal(t, "pt-BR", board.Language)
		_, ok := board.Category("games")
		assert.True(t, ok)
	})

	t.Run("menu cancelled", func(t *testing.T) {
		setupBoard(t, "en-US")

		out, err := runCmd(t, "", "config")
		require.NoError(t, err)
		assert.Contains(t, out, "Operation cancelled.")
	})
}
