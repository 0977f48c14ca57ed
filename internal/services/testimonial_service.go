package services

import (
	"lumakin.dev/internal/carousel"
	"lumakin.dev/internal/models"
)

// TestimonialService pages through testimonials and builds the rotating
// carousel each live viewer gets.
type TestimonialService struct {
	pagedList[models.Testimonial]
	opts []carousel.Option
}

// NewTestimonialService creates a TestimonialService. opts apply to every
// carousel it builds.
func NewTestimonialService(testimonials []models.Testimonial, perPage int, opts ...carousel.Option) (*TestimonialService, error) {
	list, err := newPagedList(testimonials, perPage)
	if err != nil {
		return nil, err
	}
	return &TestimonialService{pagedList: list, opts: opts}, nil
}

// NewCarousel returns an unmounted carousel starting on page start. The
// caller owns it and must unmount it.
func (s *TestimonialService) NewCarousel(start int, opts ...carousel.Option) (*carousel.Carousel[models.Testimonial], error) {
	all := append(append([]carousel.Option{}, s.opts...), opts...)
	c, err := carousel.New(s.items, s.perPage, all...)
	if err != nil {
		return nil, err
	}
	if err := c.GoTo(start); err != nil {
		return nil, err
	}
	return c, nil
}
