package config

type Media struct {
	Dir       string `json:"dir" yaml:"dir" env:"MEDIA_DIR"`
	URLPrefix string `json:"url_prefix" yaml:"url_prefix"`
}

func (m *Media) fill() {
	if m.Dir == "" {
		m.Dir = "media"
	}
	if m.URLPrefix == "" {
		m.URLPrefix = "/media"
	}
}

// ShortLink configures hashids based recipe links.
type ShortLink struct {
	Salt      string `json:"salt" yaml:"salt" env:"SHORT_LINK_SALT"`
	MinLength int    `json:"min_length" yaml:"min_length"`
	BaseURL   string `json:"base_url" yaml:"base_url" env:"SHORT_LINK_BASE_URL"`
}

func (s *ShortLink) fill() {
	if s.Salt == "" {
		s.Salt = "foodgram"
	}
	if s.MinLength <= 0 {
		s.MinLength = 6
	}
	if s.BaseURL == "" {
		s.BaseURL = "http://localhost:8080"
	}
}

// ShoppingList configures the exported document.
type ShoppingList struct {
	Title    string `json:"title" yaml:"title"`
	Language string `json:"language" yaml:"language"`
	Format   string `json:"format" yaml:"format"`
	// FontPath is a TTF font with the glyphs of Title and ingredient names.
	// Without it the PDF uses the embedded Go Regular font.
	FontPath string `json:"font_path" yaml:"font_path" env:"SHOPPING_LIST_FONT"`
}

func (s *ShoppingList) fill() {
	if s.Title == "" {
		s.Title = "Shopping list"
	}
	if s.Language == "" {
		s.Language = "ru"
	}
	if s.Format == "" {
		s.Format = "pdf"
	}
}
