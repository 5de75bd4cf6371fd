package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Blog actions
	Toggle  Key
	Like    Key
	Delete  Key
	CopyURL Key
	NewBlog Key
	Refresh Key

	// Session
	Logout Key

	// Forms
	NextField Key
	PrevField Key
	Submit    Key
	Back      Key

	// Confirmation
	Confirm Key
	Cancel  Key

	// General
	Help Key
	Quit Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Toggle:  Key{Key: "enter", Help: "expand/collapse"},
		Like:    Key{Key: "l", Help: "like"},
		Delete:  Key{Key: "d", Help: "delete own blog"},
		CopyURL: Key{Key: "y", Help: "copy url"},
		NewBlog: Key{Key: "n", Help: "new blog"},
		Refresh: Key{Key: "r", Help: "refresh"},

		Logout: Key{Key: "o", Help: "log out"},

		NextField: Key{Key: "tab", Help: "next field"},
		PrevField: Key{Key: "shift+tab", Help: "previous field"},
		Submit:    Key{Key: "ctrl+s", Help: "submit"},
		Back:      Key{Key: "esc", Help: "cancel"},

		Confirm: Key{Key: "y", Help: "confirm"},
		Cancel:  Key{Key: "n", Help: "cancel"},

		Help: Key{Key: "?", Help: "help"},
		Quit: Key{Key: "q", Help: "quit"},
	}
}

// HelpItems returns the bindings grouped for the help screen.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "move up/down"},
		{"gg/" + k.Bottom.Key, "top/bottom"},
		{k.Toggle.Key + "/space", k.Toggle.Help},
		{"", ""},
		{"Blogs", ""},
		{k.Like.Key, k.Like.Help},
		{k.Delete.Key, k.Delete.Help},
		{k.CopyURL.Key, k.CopyURL.Help},
		{k.NewBlog.Key, k.NewBlog.Help},
		{k.Refresh.Key, k.Refresh.Help},
		{"", ""},
		{"Forms", ""},
		{k.NextField.Key + "/" + k.PrevField.Key, "switch field"},
		{k.Submit.Key, k.Submit.Help},
		{k.Back.Key, k.Back.Help},
		{"", ""},
		{"General", ""},
		{k.Logout.Key, k.Logout.Help},
		{k.Help.Key, k.Help.Help},
		{k.Quit.Key + "/ctrl+c", k.Quit.Help},
	}
}

// ShortHelp returns the hints shown in the status bar of the blog list.
func (k KeymapData) ShortHelp() []Key {
	return []Key{k.Toggle, k.Like, k.NewBlog, k.Logout, k.Help, k.Quit}
}

// KeyState tracks multi-key sequences (like 'gg').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
}

// HandleKey processes a key press in the blog list and returns the action to
// take. Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	// Handle 'gg' sequence (go to top)
	if ks.WaitingG {
		ks.WaitingG = false
		if key == "g" {
			return "top", true
		}
		// If not 'g', reset and process normally
	}

	if key == keymap.Top.Key {
		ks.WaitingG = true
		ks.LastKey = key
		return "", true // Key consumed, waiting for next
	}
	ks.LastKey = key

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Bottom.Key:
		return "bottom", true
	case keymap.Toggle.Key, " ":
		return "toggle", true
	case keymap.Like.Key:
		return "like", true
	case keymap.Delete.Key:
		return "delete", true
	case keymap.CopyURL.Key:
		return "copy", true
	case keymap.NewBlog.Key:
		return "new", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.Logout.Key:
		return "logout", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Quit.Key:
		return "quit", true
	}

	return "", false
}
