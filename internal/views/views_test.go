package views

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumakin.dev/internal/config"
	"lumakin.dev/internal/contact"
	"lumakin.dev/internal/content"
	"lumakin.dev/internal/models"
	"lumakin.dev/internal/pagination"
)

func testPage(t *testing.T, q Query) *Page {
	t.Helper()
	store, err := content.Load("")
	require.NoError(t, err)

	acc, err := pagination.New(store.Accolades, 4)
	require.NoError(t, err)
	acc.GoTo(q.AccoladesPage)

	tst, err := pagination.New(store.Testimonials, 3)
	require.NoError(t, err)
	tst.GoTo(q.TestimonialsPage)

	active := "home"
	if q.Section != "" {
		active = q.Section
	}
	return &Page{
		Profile:          store.Profile,
		Nav:              BuildNav(active),
		MenuOpen:         q.MenuOpen,
		Query:            q,
		Projects:         store.Projects,
		Accolades:        acc.Snapshot(),
		Affiliations:     store.Affiliations,
		Testimonials:     tst.Snapshot(),
		Theme:            config.DefaultSiteConfig().Theme,
		CarouselInterval: 6000,
	}
}

func render(t *testing.T, p *Page) *goquery.Document {
	t.Helper()
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRender_Sections(t *testing.T) {
	p := testPage(t, Query{})
	doc := render(t, p)

	for _, id := range []string{"home", "projects", "accolades", "affiliations", "recommendations", "contact"} {
		assert.Equal(t, 1, doc.Find("section#"+id).Length(), id)
	}
	assert.Equal(t, p.Profile.Name, strings.TrimSpace(doc.Find("#home h1").Text()))
	assert.Equal(t, len(p.Projects), doc.Find(".project-card").Length())
	assert.Equal(t, len(p.Affiliations), doc.Find(".affiliation-card").Length())
	assert.Contains(t, doc.Find(".hero-facts").Text(), strings.Join(p.Profile.Languages, ", "))
}

func TestRender_Nav(t *testing.T) {
	doc := render(t, testPage(t, Query{Section: "accolades"}))

	links := doc.Find("ul.nav-links a")
	assert.Equal(t, 6, links.Length())
	assert.Equal(t, "accolades", doc.Find("ul.nav-links a.active").AttrOr("data-section", ""))
	assert.Equal(t, 0, doc.Find("#mobile-menu").Length(), "menu starts closed")

	href, _ := links.First().Attr("href")
	assert.Equal(t, "/?section=home#home", href)
}

func TestRender_MenuOpen(t *testing.T) {
	doc := render(t, testPage(t, Query{MenuOpen: true}))

	assert.Equal(t, 6, doc.Find("#mobile-menu a").Length())
	assert.Equal(t, "/", doc.Find("#menu-toggle").AttrOr("href", ""))
	assert.Equal(t, "true", doc.Find("#menu-toggle").AttrOr("aria-expanded", ""))

	// Following a link from the open menu closes it.
	href := doc.Find("#mobile-menu a").Eq(1).AttrOr("href", "")
	u, err := url.Parse(href)
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get(ParamMenu))
	assert.Equal(t, "projects", u.Query().Get(ParamSection))
}

func TestRender_AccoladePager(t *testing.T) {
	doc := render(t, testPage(t, Query{}))
	pager := doc.Find("#accolades .pager")

	assert.Equal(t, 4, doc.Find("#accolade-pager .accolade-card").Length())
	assert.Equal(t, 1, pager.Find("span.prev.disabled").Length(), "no wrap back from the first page")
	assert.Equal(t, "/?accolades_page=1#accolades", pager.Find("a.next").AttrOr("href", ""))
	assert.Equal(t, 4, pager.Find("a.dot").Length())
	assert.Equal(t, "1", strings.TrimSpace(pager.Find("a.dot.current").Text()))
}

func TestRender_AccoladeLastPage(t *testing.T) {
	doc := render(t, testPage(t, Query{AccoladesPage: 3, TestimonialsPage: 1}))
	pager := doc.Find("#accolades .pager")

	assert.Equal(t, 1, pager.Find("span.next.disabled").Length())
	href := pager.Find("a.prev").AttrOr("href", "")
	u, err := url.Parse(href)
	require.NoError(t, err)
	assert.Equal(t, "2", u.Query().Get(ParamAccoladesPage))
	assert.Equal(t, "1", u.Query().Get(ParamTestimonialsPage), "other pagers keep their page")
}

func TestRender_AccoladeLinksAndLogos(t *testing.T) {
	p := testPage(t, Query{})
	p.Accolades = pagination.Snapshot[models.Accolade]{
		TotalPages: 1,
		Items: []models.Accolade{
			{Title: "Linked", Organization: "Google", Year: "2025", Link: "https://example.com/a"},
			{Title: "Blank", Organization: "ICP Philippines", Year: "2025", Link: "leave it blank"},
			{Title: "Issued", Organization: "Some Society", Issuer: "Chapter", Year: "2024"},
		},
	}
	doc := render(t, p)
	cards := doc.Find("#accolade-pager .accolade-card")
	require.Equal(t, 3, cards.Length())

	assert.True(t, cards.Eq(0).Is("a"))
	assert.Equal(t, "https://example.com/a", cards.Eq(0).AttrOr("href", ""))
	assert.True(t, cards.Eq(1).Is("div"), "blank links render without an anchor")

	logo := cards.Eq(2).Find("img.org-logo")
	assert.Equal(t, "/logos/some-society.png", logo.AttrOr("src", ""))
	assert.Equal(t, "https://via.placeholder.com/40?text=S", logo.AttrOr("data-fallback", ""))
	assert.Equal(t, "Chapter", cards.Eq(2).Find(".issuer").Text())
	assert.Equal(t, 0, doc.Find("#accolades .pager").Length(), "single page has no pager")
}

func TestRender_Testimonials(t *testing.T) {
	doc := render(t, testPage(t, Query{}))
	carousel := doc.Find("#testimonial-carousel")

	assert.Equal(t, "6000", carousel.AttrOr("data-interval", ""))
	assert.Equal(t, "2", carousel.AttrOr("data-total-pages", ""))

	wrappers := carousel.Find(".animated")
	require.Equal(t, 3, wrappers.Length())
	assert.Contains(t, wrappers.Eq(2).AttrOr("style", ""), "animation-delay: 200ms")

	// Arrows wrap around.
	pager := doc.Find("#recommendations .pager")
	assert.Equal(t, "/?testimonials_page=1#recommendations", pager.Find("a.prev").AttrOr("href", ""))
	assert.Equal(t, "/?testimonials_page=1#recommendations", pager.Find("a.next").AttrOr("href", ""))
}

func TestRender_NoTestimonials(t *testing.T) {
	p := testPage(t, Query{})
	p.Testimonials = pagination.Snapshot[models.Testimonial]{Items: []models.Testimonial{}}

	doc := render(t, p)
	assert.Equal(t, 0, doc.Find("#testimonial-carousel").Length())
}

func TestRender_ContactStatus(t *testing.T) {
	tests := []struct {
		name     string
		view     ContactView
		class    string
		disabled bool
		button   string
	}{
		{
			name:   "idle",
			view:   ContactView{},
			button: "Send Message",
		},
		{
			name:     "submitting",
			view:     ContactView{Status: contact.Status{State: contact.Submitting}},
			disabled: true,
			button:   "Sending...",
		},
		{
			name:   "success",
			view:   ContactView{Status: contact.Status{State: contact.Success, Success: true, Message: contact.MsgSuccess}},
			class:  "success",
			button: "Send Message",
		},
		{
			name: "failed keeps fields",
			view: ContactView{
				Fields: contact.Fields{Name: "Ana", Email: "ana@example.com", Message: "<b>hi</b>"},
				Status: contact.Status{State: contact.Failed, Message: contact.MsgNetwork, Kind: contact.KindNetwork},
			},
			class:  "error",
			button: "Send Message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPage(t, Query{})
			p.Contact = tt.view
			doc := render(t, p)

			status := doc.Find("#contact-status")
			if tt.class == "" {
				assert.Equal(t, 0, status.Length())
			} else {
				assert.True(t, status.HasClass(tt.class))
				assert.Equal(t, tt.view.Status.Message, status.Text())
			}

			button := doc.Find("#contact-form button")
			_, disabled := button.Attr("disabled")
			assert.Equal(t, tt.disabled, disabled)
			assert.Equal(t, tt.button, button.Text())

			assert.Equal(t, tt.view.Fields.Name, doc.Find("#name").AttrOr("value", ""))
			assert.Equal(t, tt.view.Fields.Message, doc.Find("#message").Text())
		})
	}
}

func TestQuery(t *testing.T) {
	assert.Equal(t, "/", Query{}.URL())
	assert.Equal(t, "/?accolades_page=2&menu=open", Query{AccoladesPage: 2, MenuOpen: true}.URL())
	assert.Equal(t, "/?section=contact#contact", Query{MenuOpen: true}.Navigate("contact").Href("contact"))

	q := ParseQuery(url.Values{
		ParamAccoladesPage:    {"3"},
		ParamTestimonialsPage: {"x"},
		ParamMenu:             {"open"},
		ParamSection:          {"projects"},
	})
	assert.Equal(t, Query{AccoladesPage: 3, MenuOpen: true, Section: "projects"}, q)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 2, wrap(-1, 3))
	assert.Equal(t, 0, wrap(3, 3))
	assert.Equal(t, 0, wrap(5, 0))
	assert.Equal(t, []int{0, 1, 2}, seq(3))
	assert.Empty(t, seq(-1))
	assert.Equal(t, []string{"a", "b", "c", "d"}, tags([]string{"a", "b", "c", "d", "e"}))
	assert.Equal(t, 1, extraTags([]string{"a", "b", "c", "d", "e"}))
	assert.Equal(t, "linkedin.com/in/someone", DisplayURL("https://www.linkedin.com/in/someone/"))
}
