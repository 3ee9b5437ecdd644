package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCommand(t *testing.T) {
	t.Run("renders the chosen task", func(t *testing.T) {
		setupBoard(t, "en-US")
		addTask(t, "Buy milk", "--category", "personal", "--description", "Two litres of oat milk")
		addTask(t, "Write report", "--category", "work")

		out, err := runCmd(t, "1\n", "view", "milk")
		require.NoError(t, err)

		assert.Contains(t, out, "View Task")
		assert.Contains(t, out, "[personal] Buy milk")
		assert.NotContains(t, out, "Write report")
		assert.Contains(t, out, "To Do · Personal · Medium")
		assert.Contains(t, out, "Two litres of oat milk")
	})

	t.Run("no tasks yet", func(t *testing.T) {
		setupBoard(t, "en-US")

		out, err := runCmd(t, "", "view")
		require.NoError(t, err)
		assert.Contains(t, out, "No tasks found. Create one with 'task-cli new'.")
	})

	t.Run("nothing matches", func(t *testing.T) {
		setupBoard(t, "en-US")
		addTask(t, "Buy milk")

		out, err := runCmd(t, "", "view", "bread")
		require.NoError(t, err)
		assert.Contains(t, out, "No tasks found matching query 'bread' and filters.")

		out, err = runCmd(t, "", "view", "-s", "done")
		require.NoError(t, err)
		assert.Contains(t, out, "No tasks found matching your filters.")
	})

	t.Run("cancelled selection", func(t *testing.T) {
		setupBoard(t, "en-US")
		addTask(t, "Buy milk")

		out, err := runCmd(t, "", "view")
		require.NoError(t, err)
		assert.Contains(t, out, "Operation cancelled.")
	})
}

func TestSearchCommand(t *testing.T) {
	t.Run("asks for the term", func(t *testing.T) {
		setupBoard(t, "en-US")
		addTask(t, "Buy milk", "--description", "from the corner shop")
		addTask(t, "Write report")

		out, err := runCmd(t, "\ncorner\n1\n", "search")
		require.NoError(t, err)

		assert.Contains(t, out, "Enter search term:")
		assert.Contains(t, out, "Search term is required!")
		assert.Contains(t, out, "from the corner shop")
		assert.NotContains(t, out, "Write report")
	})

	t.Run("term as argument", func(t *testing.T) {
		setupBoard(t, "pt-BR")
		_, err := runCmd(t, "", "new", "--no-edit", "--title", "Comprar pão")
		require.NoError(t, err)

		out, err := runCmd(t, "1\n", "search", "PÃO")
		require.NoError(t, err)

		assert.Contains(t, out, "Comprar pão")
		assert.Contains(t, out, "Descrição")
	})
}
