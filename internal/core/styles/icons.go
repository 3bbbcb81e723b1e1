package styles

// Nerd font glyphs. Tip: https://github.com/loichyan/nerdfix lists them.
var (
	IconSheet  = "\U000F021B" // nf-md-file_table
	IconSearch = "\uf002"     // nf-fa-search
	IconFilter = "\uf0b0"     // nf-fa-filter
	IconSortUp = "\uf0de"     // nf-fa-sort_asc
	IconSortDn = "\uf0dd"     // nf-fa-sort_desc
	IconHidden = "\U000F0209" // nf-md-eye_off
	IconCheck  = "\uf00c"     // nf-fa-check
	IconDot    = "·"
)

// Notification icons.
var (
	IconNotifyInfo    = "\uf05a" // nf-fa-info_circle
	IconNotifySuccess = "\uf058" // nf-fa-check_circle
	IconNotifyWarning = "\uf071" // nf-fa-warning
	IconNotifyError   = "\uf057" // nf-fa-times_circle
)
