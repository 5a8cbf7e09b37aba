package types

type UserProfile struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Avatar       string `json:"avatar"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// Subscription is a followed author with a preview of their recipes.
type Subscription struct {
	UserProfile
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

type SubscriptionQuery struct {
	PageQuery
	// RecipesLimit caps the recipe preview. Nil means unbounded.
	RecipesLimit *int `form:"recipes_limit"`
}
