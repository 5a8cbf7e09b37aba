package service

import (
	"errors"
	"fmt"
	"strings"

	"Foodgram/types"

	"github.com/tidwall/gjson"
)

var ErrImportFormat = errors.New("import data must be a JSON array of objects")

// ParseIngredients reads [{"name": .., "measurement_unit": ..}, ..].
func ParseIngredients(data []byte) ([]types.IngredientImport, error) {
	root, err := importArray(data)
	if err != nil {
		return nil, err
	}
	items := make([]types.IngredientImport, 0, len(root))
	for i, v := range root {
		if !v.IsObject() {
			return nil, fmt.Errorf("item %d: %w", i, ErrImportFormat)
		}
		items = append(items, types.IngredientImport{
			Name:            strings.TrimSpace(v.Get("name").String()),
			MeasurementUnit: strings.TrimSpace(v.Get("measurement_unit").String()),
		})
	}
	return items, nil
}

// ParseTags reads [{"name": .., "slug": ..}, ..]. Slug may be omitted.
func ParseTags(data []byte) ([]types.TagImport, error) {
	root, err := importArray(data)
	if err != nil {
		return nil, err
	}
	items := make([]types.TagImport, 0, len(root))
	for i, v := range root {
		if !v.IsObject() {
			return nil, fmt.Errorf("item %d: %w", i, ErrImportFormat)
		}
		items = append(items, types.TagImport{
			Name: strings.TrimSpace(v.Get("name").String()),
			Slug: strings.TrimSpace(v.Get("slug").String()),
		})
	}
	return items, nil
}

func importArray(data []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrImportFormat
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrImportFormat
	}
	return root.Array(), nil
}
