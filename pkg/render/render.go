// Package render turns an aggregated shopping list into a downloadable
// document.
package render

import (
	"fmt"
	"strings"
	"time"

	"Foodgram/config"
	"Foodgram/types"
)

const (
	FormatPDF = "pdf"
	FormatTXT = "txt"
)

type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

type Renderer interface {
	Render(items []types.ShoppingItem) (*Document, error)
}

// Registry holds one renderer per format.
type Registry struct {
	renderers map[string]Renderer
	fallback  string
}

func NewRegistry(conf *config.Config) *Registry {
	opts := Options{
		Title:    conf.ShoppingList.Title,
		FontPath: conf.ShoppingList.FontPath,
		Now:      time.Now,
	}
	return &Registry{
		renderers: map[string]Renderer{
			FormatPDF: NewPDF(opts),
			FormatTXT: NewText(opts),
		},
		fallback: conf.ShoppingList.Format,
	}
}

// Get returns the renderer for format; an empty format picks the configured
// default.
func (r *Registry) Get(format string) (Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = r.fallback
	}
	rd, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return rd, nil
}

type Options struct {
	Title    string
	FontPath string
	Now      func() time.Time
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// Line formats one shopping list entry.
func Line(item types.ShoppingItem) string {
	return fmt.Sprintf("%s (%s) — %d", item.Name, item.MeasurementUnit, item.Amount)
}
