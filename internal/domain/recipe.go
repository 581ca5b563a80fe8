package domain

// Recipe represents a single recipe from the static catalog.
// JSON field names follow the catalog files (Portuguese), so the records
// decode directly from receitas.json.
type Recipe struct {
	ID           int          `json:"id"`
	Name         string       `json:"nome"`
	Category     string       `json:"categoria"`
	Difficulty   string       `json:"dificuldade"`
	PrepMinutes  int          `json:"tempoPreparoMinutos"`
	CookMinutes  int          `json:"tempoCozimentoMinutos"`
	Servings     int          `json:"porcoes"`
	Description  string       `json:"descricaoRapida"`
	Instructions []string     `json:"instrucoes"`
	Ingredients  []Ingredient `json:"ingredientes"`
	Tags         []string     `json:"tags"`
	Calories     float64      `json:"calorias"`
	Nutrition    Nutrition    `json:"nutricao"`
}

// Ingredient is a single entry in a recipe's ingredient list.
type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantidade"`
	Category string `json:"categoria"`
}

// Nutrition holds the per-serving macronutrient breakdown in grams.
type Nutrition struct {
	Protein      float64 `json:"proteina"`
	Carbohydrate float64 `json:"carboidrato"`
	Fat          float64 `json:"gordura"`
	Fiber        float64 `json:"fibra"`
}

// TotalMinutes returns combined prep and cook time.
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}
