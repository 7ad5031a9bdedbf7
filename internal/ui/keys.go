package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit          key.Binding
	Help          key.Binding
	Enter         key.Binding
	Back          key.Binding
	Refresh       key.Binding
	GlobalSearch  key.Binding
	Notifications key.Binding
	Filter        key.Binding
	ServerFilter  key.Binding
	Sort          key.Binding
	Call          key.Binding
	NewContact    key.Binding
	Toggle        key.Binding
	ToggleAll     key.Binding
	LogoutAll     key.Binding
	PauseAll      key.Binding
	QueueLogin    key.Binding
	QueuePause    key.Binding
	Outcome       key.Binding
	MarkAllRead   key.Binding
	ActivityLog   key.Binding
	NextPage      key.Binding
	PrevPage      key.Binding
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
}

var Keys = KeyMap{
	Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Enter:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Refresh:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	GlobalSearch:  key.NewBinding(key.WithKeys("ctrl+f", "/"), key.WithHelp("/", "search")),
	Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
	Filter:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	ServerFilter:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "filter")),
	Sort:          key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Call:          key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "call")),
	NewContact:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add contact")),
	Toggle:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	ToggleAll:     key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand/collapse all")),
	LogoutAll:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout from all queues")),
	PauseAll:      key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pause from all queues")),
	QueueLogin:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "login/logout queue")),
	QueuePause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/unpause queue")),
	Outcome:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "outcome")),
	MarkAllRead:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "mark all read")),
	ActivityLog:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "activity log")),
	NextPage:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("->", "next page")),
	PrevPage:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("<-", "prev page")),
	Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:        key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown:      key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
}
