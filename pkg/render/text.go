package render

import (
	"bytes"
	"fmt"

	"Foodgram/types"
)

type Text struct {
	opts Options
}

func NewText(opts Options) *Text {
	return &Text{opts: opts}
}

func (t *Text) Render(items []types.ShoppingItem) (*Document, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n\n", t.opts.Title, t.opts.now().Format("02.01.2006"))
	for i, item := range items {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, Line(item))
	}
	return &Document{
		Filename:    "shopping_list.txt",
		ContentType: "text/plain; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}
