package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	ResetRate key.Binding
	NextScene key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "이전 항목")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "다음 항목")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "감소")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "증가")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "켜기/끄기")),
		ResetRate: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "산재율 초기화")),
		NextScene: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "화면 전환")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "뒤로")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "도움말")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "종료")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.NextScene, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.ResetRate},
		{k.NextScene, k.Back, k.Help, k.Quit},
	}
}
