package types

import "time"

type Tag struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Ingredient struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeIngredient is one line item as shown to readers.
type RecipeIngredient struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeShort is the projection returned by relation endpoints and
// subscription previews.
type RecipeShort struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type RecipeDetail struct {
	ID               uint64             `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           UserProfile        `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
	CreatedAt        time.Time          `json:"created_at"`
}

type IngredientAmountRequest struct {
	ID     uint64 `json:"id"`
	Amount int    `json:"amount"`
}

// RecipeWriteRequest is the body of recipe create and update. Image is a
// base64 data URI and may be empty on update.
type RecipeWriteRequest struct {
	Name        string                    `json:"name"`
	Text        string                    `json:"text"`
	CookingTime int                       `json:"cooking_time"`
	Image       string                    `json:"image"`
	Tags        []uint64                  `json:"tags"`
	Ingredients []IngredientAmountRequest `json:"ingredients"`
}

type RecipeQuery struct {
	PageQuery
	Author           uint64   `form:"author"`
	Tags             []string `form:"tags"`
	IsFavorited      bool     `form:"is_favorited"`
	IsInShoppingCart bool     `form:"is_in_shopping_cart"`
}

type ShortLinkResponse struct {
	ShortLink string `json:"short-link"`
}
