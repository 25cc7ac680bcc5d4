package model

// Icons used in the HTML report and console messages.
const (
	IconOverview = "📊"
	IconMissing  = "🚫"
	IconAdded    = "➕"
	IconDefines  = "🔧"
	IconSource   = "🔍"
	IconClean    = "🎉"
	IconDone     = "✅"
)
