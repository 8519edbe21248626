package sections

import (
	"fmt"
	"html/template"
	"strings"
)

// Icon names understood by Icon.
const (
	IconBriefcase    = "briefcase"
	IconArrowUp      = "arrow-up"
	IconExternalLink = "external-link"
	IconGitHub       = "github"
)

var iconPaths = map[string]string{
	IconBriefcase: `<rect width="20" height="14" x="2" y="7" rx="2" ry="2"/>` +
		`<path d="M16 21V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"/>`,
	IconArrowUp: `<path d="m5 12 7-7 7 7"/><path d="M12 19V5"/>`,
	IconExternalLink: `<path d="M15 3h6v6"/><path d="M10 14 21 3"/>` +
		`<path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/>`,
	IconGitHub: `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 ` +
		`0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 ` +
		`5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
}

// Icon renders the named glyph as inline SVG at the given pixel size.
// Unknown names render nothing.
func Icon(name string, size int, class ...string) template.HTML {
	paths, ok := iconPaths[name]
	if !ok {
		return ""
	}
	classAttr := ""
	if c := strings.TrimSpace(strings.Join(class, " ")); c != "" {
		classAttr = fmt.Sprintf(` class="%s"`, template.HTMLEscapeString(c))
	}
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" `+
			`stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" `+
			`aria-hidden="true" data-icon="%s"%s>%s</svg>`,
		size, size, name, classAttr, paths))
}
