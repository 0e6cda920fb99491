package browser

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color
	DirColor           tcell.Color
	FileColor          tcell.Color
	HotkeyColor        tcell.Color
	HintColor          tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,
	DirColor:           tcell.ColorDodgerBlue,
	FileColor:          tcell.ColorWhiteSmoke,
	HotkeyColor:        tcell.ColorOrange,
	HintColor:          tcell.ColorSlateGray,
}

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"txt":  tcell.ColorWhite,
	"log":  tcell.ColorRosyBrown,
	"png":  tcell.ColorMediumPurple,
	"jpg":  tcell.ColorMediumPurple,
}

// EntryColor picks the list colour for an entry.
func EntryColor(name string, isDir bool) tcell.Color {
	if isDir {
		return Style.DirColor
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return Style.FileColor
}
