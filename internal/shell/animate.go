package shell

import (
	"fmt"
	"html/template"
	"strings"
)

// Animation variants understood by the stylesheet.
const (
	FadeInUp     = "fadeInUp"
	FadeIn       = "fadeIn"
	SlideInLeft  = "slideInLeft"
	SlideInRight = "slideInRight"
)

var variants = map[string]bool{
	FadeInUp:     true,
	FadeIn:       true,
	SlideInLeft:  true,
	SlideInRight: true,
}

// Animate wraps content in the element the stylesheet animates on entry.
// Unknown variants fall back to FadeInUp; negative delays become zero.
func Animate(content template.HTML, variant string, delayMs int) template.HTML {
	if !variants[variant] {
		variant = FadeInUp
	}
	delayMs = max(delayMs, 0)

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<div class="animated %s" data-animation="%s" style="animation-delay: %dms">`,
		variant, variant, delayMs)
	sb.WriteString(string(content))
	sb.WriteString(`</div>`)
	return template.HTML(sb.String())
}
