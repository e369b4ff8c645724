package core_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/yoda/pkg/core"
)

func TestSearchReport_Render(t *testing.T) {
	t.Run("Match Lines", func(t *testing.T) {
		report := core.SearchReport{
			Query: "milk",
			Results: []core.FileResult{
				{Path: "inbox.md", Matches: []core.Match{{Path: "inbox.md", Line: 1, Text: "- [2024-01-01 12:30:45] buy milk"}}},
				{Path: "z.md"},
			},
		}

		var out, warn bytes.Buffer
		require.NoError(t, report.Render(&out, &warn))
		assert.Equal(t, "inbox.md:1:- [2024-01-01 12:30:45] buy milk\n", out.String())
		assert.Empty(t, warn.String())
	})

	t.Run("No Matches Notice", func(t *testing.T) {
		var out, warn bytes.Buffer
		require.NoError(t, core.SearchReport{Query: "bread"}.Render(&out, &warn))
		assert.Equal(t, "No matches found.\n", out.String())
	})

	t.Run("Warnings Go To Separate Stream", func(t *testing.T) {
		report := core.SearchReport{
			Results: []core.FileResult{
				{Path: "bad.md", Err: errors.New("invalid utf-8")},
				{Path: "good.md", Matches: []core.Match{{Path: "good.md", Line: 2, Text: "x"}}},
			},
		}

		var out, warn bytes.Buffer
		require.NoError(t, report.Render(&out, &warn))
		assert.Equal(t, "good.md:2:x\n", out.String())
		assert.Equal(t, "Warning: Could not read bad.md: invalid utf-8\n", warn.String())
	})
}

func TestTodayReport_Render(t *testing.T) {
	t.Run("Log And Mentions", func(t *testing.T) {
		report := core.TodayReport{
			Date: "2024-01-01",
			Log:  "hello",
			Mentions: []core.FileResult{
				{Path: "other.md", Matches: []core.Match{{Path: "other.md", Line: 1, Text: "2024-01-01 meeting"}}},
			},
		}

		var out, warn bytes.Buffer
		require.NoError(t, report.Render(&out, &warn))

		expected := "=== Today's log (2024-01-01) ===\n\n" +
			"hello\n" +
			"\n=== Other mentions of 2024-01-01 ===\n\n" +
			"other.md:1:2024-01-01 meeting\n"
		assert.Equal(t, expected, out.String())
		assert.Empty(t, warn.String())
	})

	t.Run("Empty Day", func(t *testing.T) {
		report := core.TodayReport{Date: "2024-01-01", Log: "   \n"}

		var out, warn bytes.Buffer
		require.NoError(t, report.Render(&out, &warn))

		expected := "=== Today's log (2024-01-01) ===\n\n" +
			"No log file for today\n" +
			"\n=== Other mentions of 2024-01-01 ===\n\n" +
			"No other mentions found.\n"
		assert.Equal(t, expected, out.String())
	})
}
