package types

type IngredientImport struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type TagImport struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ImportResult counts rows touched by an import run.
type ImportResult struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
}
