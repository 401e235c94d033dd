package ui

// RenderPreviewBubble draws the message bubble shown next to the tab while
// a section is previewed. Body text wraps to the bubble width; the title
// row is bold when present.
func RenderPreviewBubble(title, body string, width int) string {
	if width < 4 {
		width = 4
	}
	var content string
	if title != "" {
		content = BubbleTitleStyle.Render(title)
	}
	if body != "" {
		if content != "" {
			content += "\n"
		}
		content += body
	}
	return BubbleStyle.Width(width).Render(content)
}
