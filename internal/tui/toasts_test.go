package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/sheet/internal/core/notify"
	"github.com/hay-kot/sheet/internal/core/styles"
)

func infoToast(msg string) notify.Notification {
	return notify.Notification{Level: notify.LevelInfo, Message: msg}
}

func TestToastStack_Push(t *testing.T) {
	t.Run("keeps the newest up to the limit", func(t *testing.T) {
		s := newToastStack(time.Second, 2)
		s.Push(infoToast("Exported 5 rows"))
		s.Push(infoToast("Imported 2 rows"))
		s.Push(infoToast("Deleted 1 row"))

		require.Equal(t, 2, s.Len())
		assert.Equal(t, "Imported 2 rows", s.items[0].notification.Message)
		n, ok := s.Newest()
		require.True(t, ok)
		assert.Equal(t, "Deleted 1 row", n.Message)
	})

	t.Run("collapses a repeat of the newest", func(t *testing.T) {
		s := newToastStack(time.Second, 4)
		s.Push(infoToast("Exported 5 rows"))
		s.Tick(900 * time.Millisecond)
		s.Push(infoToast("Exported 5 rows"))

		require.Equal(t, 1, s.Len())
		assert.Equal(t, 1, s.items[0].repeats)
		assert.Equal(t, time.Second, s.items[0].remaining)
		assert.Contains(t, ansi.Strip(s.View()), "(x2)")
	})

	t.Run("same text at another level stacks", func(t *testing.T) {
		s := newToastStack(time.Second, 4)
		s.Push(infoToast("Import failed"))
		s.Push(notify.Notification{Level: notify.LevelError, Message: "Import failed"})

		assert.Equal(t, 2, s.Len())
	})
}

func TestToastStack_Tick(t *testing.T) {
	s := newToastStack(time.Second, 4)
	s.Push(notify.Notification{Level: notify.LevelError, Message: "Import failed"})
	s.Push(infoToast("Exported 5 rows"))

	s.Tick(1500 * time.Millisecond)

	require.Equal(t, 1, s.Len(), "errors outlive other levels")
	assert.Equal(t, "Import failed", s.items[0].notification.Message)

	s.Tick(time.Second)
	assert.Zero(t, s.Len())
	_, ok := s.Newest()
	assert.False(t, ok)
}

func TestToastStack_TickLifecycle(t *testing.T) {
	s := newToastStack(toastTickInterval, 4)
	assert.Nil(t, s.startTick(), "nothing to show")

	s.Push(infoToast("Saved"))
	require.NotNil(t, s.startTick())
	assert.Nil(t, s.startTick(), "timer already running")

	assert.Nil(t, s.onTick())
	assert.False(t, s.ticking)
}

func TestToastStack_View(t *testing.T) {
	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelError, styles.IconNotifyError},
		{notify.LevelWarning, styles.IconNotifyWarning},
		{notify.LevelSuccess, styles.IconNotifySuccess},
		{notify.LevelInfo, styles.IconNotifyInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			s := newToastStack(time.Second, 4)
			s.Push(notify.Notification{Level: tt.level, Message: "3 rows hidden"})

			out := s.View()
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "3 rows hidden")
		})
	}
}

func TestToastStack_Overlay(t *testing.T) {
	s := newToastStack(time.Second, 4)
	assert.Equal(t, "grid", s.Overlay("grid", 80, 24), "empty stack leaves the background")

	s.Push(infoToast("Exported 5 rows"))

	width, height := 120, 40
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}

	lines := strings.Split(s.Overlay(strings.Join(rows, "\n"), width, height), "\n")
	found := -1
	for i, line := range lines {
		if strings.Contains(line, "Exported 5 rows") {
			found = i
			assert.True(t, strings.HasPrefix(ansi.Strip(line), strings.Repeat(".", width/2)), "anchored to the right")
		}
	}
	require.NotEqual(t, -1, found)
	assert.Greater(t, found, height/2, "anchored to the bottom")
}
