package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"Foodgram/types"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

const (
	fontFamily   = "ListFont"
	lineHeight   = 7.0
	bottomMargin = 18.0
)

// ErrMissingGlyphs is returned when the list has characters the font cannot
// draw.
var ErrMissingGlyphs = errors.New("font has no glyphs for some characters")

// PDF renders an A4 document, one item per line, with page numbers in the
// footer. Text is drawn with Options.FontPath or, when unset, the embedded
// Go Regular font, which covers Latin, Cyrillic and Greek.
type PDF struct {
	opts Options
}

func NewPDF(opts Options) *PDF {
	return &PDF{opts: opts}
}

func (p *PDF) Render(items []types.ShoppingItem) (*Document, error) {
	font, err := p.font()
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+Line(item))
	}
	if err := checkGlyphs(font, p.opts.Title, strings.Join(lines, "")); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.AliasNbPages("")
	pdf.AddUTF8FontFromBytes(fontFamily, "", font)

	pdf.SetTitle(p.opts.Title, true)
	pdf.SetCreator("foodgram", true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(fontFamily, "", 18)
	pdf.CellFormat(0, 12, p.opts.Title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 8, p.opts.now().Format("02.01.2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 12)
	for _, line := range lines {
		pdf.MultiCell(0, lineHeight, line, "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return &Document{
		Filename:    "shopping_list.pdf",
		ContentType: "application/pdf",
		Body:        buf.Bytes(),
	}, nil
}

func (p *PDF) font() ([]byte, error) {
	if p.opts.FontPath == "" {
		return goregular.TTF, nil
	}
	return os.ReadFile(p.opts.FontPath)
}

func checkGlyphs(ttf []byte, texts ...string) error {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	var (
		buf     sfnt.Buffer
		missing []string
		seen    = make(map[rune]struct{})
	)
	for _, text := range texts {
		for _, r := range text {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			idx, err := f.GlyphIndex(&buf, r)
			if err != nil {
				return fmt.Errorf("lookup glyph %q: %w", r, err)
			}
			if idx == 0 {
				missing = append(missing, string(r))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingGlyphs, strings.Join(missing, " "))
	}
	return nil
}
