package domain

// Food represents one entry of the foods catalog (alimentos.json), used to
// power the ingredient autocomplete.
type Food struct {
	ID           int     `json:"id"`
	Name         string  `json:"nome"`
	Calories     float64 `json:"calorias"`
	Protein      float64 `json:"proteina"`
	Carbohydrate float64 `json:"carboidrato"`
}
