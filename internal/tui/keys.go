package tui

import "github.com/hay-kot/sheet/internal/tui/components"

func helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{
			Title: "Navigation",
			Entries: []components.HelpEntry{
				{Key: "j/k ↑/↓", Desc: "move cursor"},
				{Key: "g/G", Desc: "first / last row"},
				{Key: "←/→", Desc: "select column"},
				{Key: "[ / ]", Desc: "previous / next tab"},
				{Key: "+", Desc: "add tab"},
			},
		},
		{
			Title: "Selection",
			Entries: []components.HelpEntry{
				{Key: "space", Desc: "toggle row"},
				{Key: "a", Desc: "select all / none"},
				{Key: "esc", Desc: "clear selection"},
			},
		},
		{
			Title: "View",
			Entries: []components.HelpEntry{
				{Key: "/", Desc: "search"},
				{Key: "f / F", Desc: "filter / clear filter"},
				{Key: "s", Desc: "sort (c clears)"},
				{Key: "h", Desc: "hide fields"},
				{Key: "t", Desc: "column type"},
			},
		},
		{
			Title: "Data",
			Entries: []components.HelpEntry{
				{Key: "n", Desc: "new action"},
				{Key: "e/enter", Desc: "edit row"},
				{Key: "d", Desc: "delete rows"},
				{Key: "i", Desc: "import CSV"},
				{Key: "x", Desc: "export view"},
			},
		},
		{
			Title: "Insight",
			Entries: []components.HelpEntry{
				{Key: "A", Desc: "ask a question"},
				{Key: "E", Desc: "extract values"},
				{Key: "N", Desc: "notifications"},
			},
		},
		{
			Title: "General",
			Entries: []components.HelpEntry{
				{Key: "?", Desc: "help"},
				{Key: "q", Desc: "quit"},
			},
		},
	}
}
