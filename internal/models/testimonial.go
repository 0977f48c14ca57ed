package models

// Testimonial represents a recommendation quote
type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
}

// TestimonialList wraps the array of testimonials
type TestimonialList struct {
	Testimonials []Testimonial `json:"testimonials"`
}
