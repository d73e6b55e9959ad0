// Package food defines the food catalog that the picker draws from.
//
// A Catalog is an ordered, immutable list of Items. Catalogs are built once at
// startup, either from the embedded default list or from a user-supplied YAML
// file, and are never modified afterwards.
//
// # Catalog File Format
//
//	foods:
//	  - name: Burger
//	    image: "🍔"
//	    calorie: 294
//	    carb: 14
//	    fat: 24
//	    protein: 17
//
// Names are the identity of an item and must be unique within a catalog.
// Nutrition values are per serving and must not be negative.
//
// # Usage Example
//
//	catalog, err := food.LoadFile("my-foods.yaml")
//	if err != nil {
//	    return err
//	}
//	for _, item := range catalog.List() {
//	    fmt.Println(item.Image, item.Name, item.CalorieText())
//	}
package food
