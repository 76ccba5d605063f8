package tui

import "github.com/rgehrsitz/wonpay/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles with components
var (
	TitleStyle        = tuistyles.TitleStyle
	SubtitleStyle     = tuistyles.SubtitleStyle
	StatusBarStyle    = tuistyles.StatusBarStyle
	StatusKeyStyle    = tuistyles.StatusKeyStyle
	BorderStyle       = tuistyles.BorderStyle
	ActiveBorderStyle = tuistyles.ActiveBorderStyle
	ErrorStyle        = tuistyles.ErrorStyle
	InfoStyle         = tuistyles.InfoStyle
	TableHeaderStyle  = tuistyles.TableHeaderStyle
	TableCellStyle    = tuistyles.TableCellStyle
)
