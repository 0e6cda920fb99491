package browser

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

type MenuItem struct {
	Region string
	Title  string
	HotKey string
	Action func()
}

// bottom is the hint bar. Every item is a region, so clicking it runs the action.
type bottom struct {
	*tview.TextView
	items []MenuItem
}

func newBottom(items []MenuItem) *bottom {
	b := &bottom{
		items: items,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(Style.HintColor),
	}
	b.SetHighlightedFunc(b.highlighted)
	b.SetText(b.render())
	return b
}

func (b *bottom) render() string {
	const separator = " ┊ "
	parts := make([]string, 0, len(b.items))
	for _, mi := range b.items {
		hotkey := fmt.Sprintf("[%s]%s[-]", Style.HotkeyColor.String(), mi.HotKey)
		parts = append(parts, fmt.Sprintf(`["%s"]%s %s[""]`, mi.Region, hotkey, mi.Title))
	}
	return strings.Join(parts, separator)
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	b.Highlight()
	for _, mi := range b.items {
		if mi.Region == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}
