package food

import "strconv"

// Display units for nutrition values.
const (
	UnitCalorie = "kcal"
	UnitGram    = "g"
)

// FormatAmount renders a value followed by its unit, dropping any
// insignificant trailing zeros: 294 -> "294 kcal", 1.80 -> "1.8 g".
func FormatAmount(value float64, unit string) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// CalorieText returns the calorie value with its unit.
func (i Item) CalorieText() string { return FormatAmount(i.Calorie, UnitCalorie) }

// CarbText returns the carbohydrate value with its unit.
func (i Item) CarbText() string { return FormatAmount(i.Carb, UnitGram) }

// FatText returns the fat value with its unit.
func (i Item) FatText() string { return FormatAmount(i.Fat, UnitGram) }

// ProteinText returns the protein value with its unit.
func (i Item) ProteinText() string { return FormatAmount(i.Protein, UnitGram) }

// String implements fmt.Stringer.
func (i Item) String() string {
	return i.Image + " " + i.Name
}
