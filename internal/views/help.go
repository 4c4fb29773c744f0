package views

const helpMarkdown = `# Keys

| Key | Action |
| --- | --- |
| 1-4 | daily / weekly / monthly / yearly view |
| h, l | previous / next day |
| j, k | move habit cursor |
| space, enter | toggle habit |
| s | execute (start) the selected day |
| t | jump to today |
| / | command palette (goto, view, today, start) |
| ? | toggle this help |
| q | quit |
`

// RenderHelpPanel renders the key reference through glamour.
func RenderHelpPanel() string {
	return RenderMarkdown(helpMarkdown)
}
