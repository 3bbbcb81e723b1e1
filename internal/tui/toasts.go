package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/sheet/internal/core/notify"
	"github.com/hay-kot/sheet/internal/core/styles"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 4
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

type toastTickMsg time.Time

type toast struct {
	notification notify.Notification
	remaining    time.Duration
	repeats      int
}

// toastStack holds the notifications currently shown in the lower right of
// the sheet. Errors stay up twice as long as other levels.
type toastStack struct {
	items   []toast
	ttl     time.Duration
	limit   int
	ticking bool
}

func newToastStack(ttl time.Duration, limit int) *toastStack {
	return &toastStack{ttl: ttl, limit: limit}
}

func (s *toastStack) lifetime(level notify.Level) time.Duration {
	if level == notify.LevelError {
		return 2 * s.ttl
	}
	return s.ttl
}

// Push shows n. A notification equal to the newest toast refreshes it and
// bumps its repeat count instead of stacking a copy.
func (s *toastStack) Push(n notify.Notification) {
	if last := len(s.items) - 1; last >= 0 {
		top := &s.items[last]
		if top.notification.Level == n.Level && top.notification.Message == n.Message {
			top.repeats++
			top.remaining = s.lifetime(n.Level)
			return
		}
	}

	s.items = append(s.items, toast{notification: n, remaining: s.lifetime(n.Level)})
	if len(s.items) > s.limit {
		s.items = s.items[len(s.items)-s.limit:]
	}
}

// Tick ages every toast by d and drops the expired ones.
func (s *toastStack) Tick(d time.Duration) {
	alive := s.items[:0]
	for _, t := range s.items {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	s.items = alive
}

func (s *toastStack) Len() int { return len(s.items) }

// Newest returns the most recent notification.
func (s *toastStack) Newest() (notify.Notification, bool) {
	if len(s.items) == 0 {
		return notify.Notification{}, false
	}
	return s.items[len(s.items)-1].notification, true
}

// startTick returns the first tick command when toasts are showing and no
// timer is running.
func (s *toastStack) startTick() tea.Cmd {
	if len(s.items) == 0 || s.ticking {
		return nil
	}
	s.ticking = true
	return scheduleToastTick()
}

// onTick ages the stack and schedules the next tick while toasts remain.
func (s *toastStack) onTick() tea.Cmd {
	s.Tick(toastTickInterval)
	if len(s.items) > 0 {
		return scheduleToastTick()
	}
	s.ticking = false
	return nil
}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// View renders the stack oldest first.
func (s *toastStack) View() string {
	if len(s.items) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(s.items))
	for _, t := range s.items {
		rendered = append(rendered, renderToast(t))
	}
	return strings.Join(rendered, "\n")
}

func renderToast(t toast) string {
	icon, style := styles.IconNotifyInfo, styles.ToastInfoStyle
	switch t.notification.Level {
	case notify.LevelError:
		icon, style = styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		icon, style = styles.IconNotifyWarning, styles.ToastWarningStyle
	case notify.LevelSuccess:
		icon, style = styles.IconNotifySuccess, styles.ToastSuccessStyle
	}

	content := icon + " " + t.notification.Message
	if t.repeats > 0 {
		content += styles.TextMutedStyle.Render(fmt.Sprintf(" (x%d)", t.repeats+1))
	}
	return style.Width(toastWidth).Render(content)
}

// Overlay draws the stack over background, anchored to the lower right.
func (s *toastStack) Overlay(background string, width, height int) string {
	content := s.View()
	if content == "" {
		return background
	}

	x := max(width-lipgloss.Width(content)-1, 0)
	y := max(height-lipgloss.Height(content)-1, 0)

	layer := lipgloss.NewLayer(content)
	layer.X(x).Y(y).Z(2)
	return lipgloss.NewCompositor(lipgloss.NewLayer(background), layer).Render()
}
