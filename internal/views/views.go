// Package views renders the single-page site with html/template.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"lumakin.dev/internal/config"
	"lumakin.dev/internal/contact"
	"lumakin.dev/internal/content"
	"lumakin.dev/internal/models"
	"lumakin.dev/internal/pagination"
	"lumakin.dev/internal/shell"
)

//go:embed templates/*.html
var templateFS embed.FS

// maxTechTags is how many technology tags a project card shows before "+N".
const maxTechTags = 4

// Page is everything the page template needs.
type Page struct {
	Profile      models.PersonalInfo
	Nav          []NavLink
	MenuOpen     bool
	Query        Query
	Projects     []models.Project
	Accolades    pagination.Snapshot[models.Accolade]
	Affiliations []models.Affiliation
	Testimonials pagination.Snapshot[models.Testimonial]
	Contact      ContactView
	Theme        config.Theme
	// CarouselInterval is the testimonial rotation period in milliseconds.
	CarouselInterval int
}

// NavLink is one navigation entry.
type NavLink struct {
	ID     string
	Label  string
	Active bool
}

// BuildNav marks the tracker's active section in the navigation list.
func BuildNav(active string) []NavLink {
	items := shell.NavItems()
	links := make([]NavLink, len(items))
	for i, item := range items {
		links[i] = NavLink{ID: item.ID, Label: item.Label, Active: item.ID == active}
	}
	return links
}

// ContactView is the contact form's rendered state.
type ContactView struct {
	Fields contact.Fields
	Status contact.Status
}

// Settled reports whether a status message should be shown.
func (c ContactView) Settled() bool {
	return c.Status.State == contact.Success || c.Status.State == contact.Failed
}

// Submitting reports whether the submit button is disabled.
func (c ContactView) Submitting() bool {
	return c.Status.State == contact.Submitting
}

// Query is the page state carried in the URL so the page works without
// scripts. Zero values are omitted from generated links.
type Query struct {
	AccoladesPage    int
	TestimonialsPage int
	MenuOpen         bool
	Section          string
}

// Query parameter names.
const (
	ParamAccoladesPage    = "accolades_page"
	ParamTestimonialsPage = "testimonials_page"
	ParamMenu             = "menu"
	ParamSection          = "section"
)

// ParseQuery reads page state from URL values. Malformed numbers become 0.
func ParseQuery(v url.Values) Query {
	return Query{
		AccoladesPage:    atoi(v.Get(ParamAccoladesPage)),
		TestimonialsPage: atoi(v.Get(ParamTestimonialsPage)),
		MenuOpen:         v.Get(ParamMenu) == "open",
		Section:          v.Get(ParamSection),
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// URL encodes q as a path plus query string.
func (q Query) URL() string {
	v := url.Values{}
	if q.AccoladesPage > 0 {
		v.Set(ParamAccoladesPage, strconv.Itoa(q.AccoladesPage))
	}
	if q.TestimonialsPage > 0 {
		v.Set(ParamTestimonialsPage, strconv.Itoa(q.TestimonialsPage))
	}
	if q.MenuOpen {
		v.Set(ParamMenu, "open")
	}
	if q.Section != "" {
		v.Set(ParamSection, q.Section)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// Href is URL plus a fragment.
func (q Query) Href(fragment string) string {
	return q.URL() + "#" + fragment
}

// WithAccolades returns q on accolade page n.
func (q Query) WithAccolades(n int) Query {
	q.AccoladesPage = n
	return q
}

// WithTestimonials returns q on testimonial page n.
func (q Query) WithTestimonials(n int) Query {
	q.TestimonialsPage = n
	return q
}

// ToggleMenu returns q with the mobile menu flipped.
func (q Query) ToggleMenu() Query {
	q.MenuOpen = !q.MenuOpen
	return q
}

// Navigate returns q after following a nav link: menu closed, section set.
func (q Query) Navigate(section string) Query {
	q.MenuOpen = false
	q.Section = section
	return q
}

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{}
	tmpl, err := template.New("").Funcs(r.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Render writes the full page. Nothing is written when rendering fails.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", p); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"animate":     shell.Animate,
		"include":     r.include,
		"logo":        content.LogoPath,
		"placeholder": content.PlaceholderURL,
		"join":        strings.Join,
		"mul":         func(a, b int) int { return a * b },
		"add":         func(a, b int) int { return a + b },
		"seq":         seq,
		"wrap":        wrap,
		"tags":        tags,
		"extraTags":   extraTags,
		"labeled":     func(title, text string) Labeled { return Labeled{Title: title, Text: text} },
		"displayURL":  DisplayURL,
	}
}

// include renders a named template to HTML so it can be passed to animate.
func (r *Renderer) include(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Labeled is a title with a line of text, for headings and contact channels.
type Labeled struct {
	Title string
	Text  string
}

// DisplayURL drops the scheme and "www." from a link for display.
func DisplayURL(link string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(link, "https://"), "http://")
	return strings.TrimSuffix(strings.TrimPrefix(s, "www."), "/")
}

func seq(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}
	return out
}

// wrap is (n mod total) kept non-negative, for carousel arrows.
func wrap(n, total int) int {
	if total <= 0 {
		return 0
	}
	return (n%total + total) % total
}

func tags(techs []string) []string {
	if len(techs) > maxTechTags {
		return techs[:maxTechTags]
	}
	return techs
}

func extraTags(techs []string) int {
	return max(len(techs)-maxTechTags, 0)
}
