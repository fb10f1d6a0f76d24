// Package testimonial serves the customer quotes shown on the home page.
package testimonial

import (
	"context"
	"net/http"

	"github.com/bindaas/storefront/api/web"
)

type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar"`
}

var testimonials = []Testimonial{
	{
		ID:      1,
		Name:    "Rajesh Kumar",
		Role:    "IT Manager, TechCorp Solutions",
		Content: "Excellent service! Got genuine Microsoft licenses at competitive prices. The support team was very helpful throughout the process.",
		Rating:  5,
		Avatar:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
	},
	{
		ID:      2,
		Name:    "Priya Sharma",
		Role:    "Business Owner",
		Content: "VPS hosting is reliable with great uptime. Perfect for my e-commerce business. Highly recommend Bindaas Genuine Services!",
		Rating:  5,
		Avatar:  "https://images.unsplash.com/photo-1494790108755-2616b056c987?w=100&h=100&fit=crop&crop=face",
	},
	{
		ID:      3,
		Name:    "Amit Patel",
		Role:    "Software Developer",
		Content: "Fast delivery and authentic products. Got my Office 2021 license instantly after payment. Great experience overall!",
		Rating:  4,
		Avatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
	},
}

// List returns a copy of every testimonial.
func List() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

func HandleList() web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, List(), http.StatusOK)
	}
}
