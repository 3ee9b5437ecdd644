package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	t.Run("from flags", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		out := addTask(t, "Buy milk",
			"--category", "personal", "--priority", "high",
			"--deadline", "03/15/2025", "--description", "Two litres")

		wantFile := fmt.Sprintf("%d-buy-milk.md", testNow.UnixMilli())
		assert.Contains(t, out, "Task created successfully: "+wantFile)
		assert.Contains(t, out, "Deadline: 03/15/2025")

		rec := findTask(t, dir, "Buy milk")
		assert.Equal(t, wantFile, rec.Filename)
		assert.Equal(t, fmt.Sprint(testNow.UnixMilli()), rec.ID)
		assert.Equal(t, "personal", rec.Category)
		assert.Equal(t, "high", rec.Priority)
		assert.Equal(t, "2025-03-15", rec.Deadline)
		assert.Equal(t, "todo", rec.Status)
		assert.Contains(t, rec.Body, "# Description")
		assert.Contains(t, rec.Body, "Two litres")
	})

	t.Run("flag defaults", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		addTask(t, "Plain")

		rec := findTask(t, dir, "Plain")
		assert.Equal(t, "medium", rec.Priority)
		assert.Equal(t, "todo", rec.Status)
		assert.Empty(t, rec.Deadline)
	})

	t.Run("same title twice gets a suffix", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		addTask(t, "Twin")
		out := addTask(t, "Twin")

		assert.Contains(t, out, fmt.Sprintf("%d-twin-1.md", testNow.UnixMilli()))
		assert.Len(t, listTasks(t, dir), 2)
	})

	t.Run("interactive", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		stdin := "\nWrite report\n1\n\nQuarterly numbers\n13/03/2025\n2\n"
		out, err := runCmd(t, stdin, "new", "--no-edit")
		require.NoError(t, err)

		assert.Contains(t, out, "Create New Task")
		assert.Contains(t, out, "Title is required!")
		assert.Contains(t, out, "MM/DD/YYYY")

		rec := findTask(t, dir, "Write report")
		assert.Equal(t, "work", rec.Category)
		assert.Equal(t, "medium", rec.Priority)
		assert.Equal(t, "2025-03-13", rec.Deadline)
		assert.Equal(t, "in-progress", rec.Status)
		assert.Contains(t, rec.Body, "Quarterly numbers")
	})

	t.Run("interactive in Portuguese", func(t *testing.T) {
		dir := setupBoard(t, "pt-BR")

		stdin := "Relatório\n2\nalta\n\n05/04/2025\n\n"
		out, err := runCmd(t, stdin, "new")
		require.NoError(t, err)

		assert.Contains(t, out, "DD/MM/YYYY")
		assert.Contains(t, out, "Prazo: 05/04/2025")

		rec := findTask(t, dir, "Relatório")
		assert.Equal(t, "personal", rec.Category)
		assert.Equal(t, "high", rec.Priority)
		assert.Equal(t, "2025-04-05", rec.Deadline)
		assert.Equal(t, "todo", rec.Status)
		assert.Contains(t, rec.Body, "# Descrição")
	})

	t.Run("cancelled mid-way stores nothing", func(t *testing.T) {
		dir := setupBoard(t, "en-US")

		out, err := runCmd(t, "Half done\n", "new")
		require.NoError(t, err)

		assert.Contains(t, out, "Operation cancelled.")
		assert.Empty(t, listTasks(t, dir))
	})
}
