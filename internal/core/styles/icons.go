package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconImage   = "\U000F021F" // 󰈟
	IconFolder  = "\uf07b"     // 
	IconHashtag = "#"
	IconEffect  = "\U000F0E0B" // 󰸋
	IconScale   = "\U000F0349" // 󰍉
)

// Notification icons
var (
	IconCheck   = "✓"
	IconCross   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
)
