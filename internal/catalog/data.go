package catalog

// Reference data supplied by the product side; treat as read-only.
var coffees = []Coffee{
	{
		ID:          1,
		Shop:        "Billz Coffee",
		Name:        "Rocking Water",
		Description: "Soft, with hints of chocolate and cashews",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagLight, TagChocolate, TagNutty},
	},
	{
		ID:          2,
		Shop:        "Billz Coffee",
		Name:        "Cosmos",
		Description: "Complex, with cocoa and cherry notes",
		Prices:      map[Size]float64{SizeLarge: 4.5, SizeMedium: 3.5, SizeSmall: 2.5},
		Tags:        []Tag{TagDark, TagChocolate, TagFruity},
	},
	{
		ID:          3,
		Shop:        "Billz Coffee",
		Name:        "Old Manhattan",
		Description: "Vibrant, with citrus and tropical notes",
		Prices:      map[Size]float64{SizeLarge: 3.5, SizeMedium: 2.5, SizeSmall: 1.5},
		Tags:        []Tag{TagLight, TagFruity},
	},
	{
		ID:          4,
		Shop:        "Green Bottle Coffee",
		Name:        "Hayes Valley",
		Description: "Lower-toned and minimally bright",
		Prices:      map[Size]float64{SizeLarge: 4.0, SizeMedium: 3.0, SizeSmall: 2.0},
		Tags:        []Tag{TagDark, TagEspresso, TagChocolate},
	},
	{
		ID:          5,
		Shop:        "Green Bottle Coffee",
		Name:        "Affogato",
		Description: "Espresso over ici ice cream",
		Prices:      map[Size]float64{SizeMedium: 5.5},
		Tags:        []Tag{TagDark, TagEspresso, TagIceCream},
	},
	{
		ID:          6,
		Shop:        "Green Bottle Coffee",
		Name:        "Hot Chocolate",
		Description: "Rich Chocolate flavor without the caffeine",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagChocolate, TagDecaf},
	},
	{
		ID:          7,
		Shop:        "Peeter's Coffee",
		Name:        "Café Domingo®",
		Description: "Toast, Toffee, Nougat",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagMedium},
	},
	{
		ID:          8,
		Shop:        "Peeter's Coffee",
		Name:        "Baridi Blend",
		Description: "White Flower, Seville Orange, Toffee",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagMedium, TagFruity},
	},
	{
		ID:          9,
		Shop:        "Peeter's Coffee",
		Name:        "Luminosa Breakfast Blend",
		Description: "Passionflower, Stone Fruit, Cacao",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagLight, TagFruity, TagChocolate},
	},
	{
		ID:          10,
		Shop:        "Dutch Sisters",
		Name:        "Annihilator",
		Description: "Chocolate macadamia nut breve",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagEspresso, TagNutty},
	},
	{
		ID:          11,
		Shop:        "Dutch Sisters",
		Name:        "Kicker®",
		Description: "Irish cream breve",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagEspresso},
	},
	{
		ID:          12,
		Shop:        "Dutch Sisters",
		Name:        "Double Torture",
		Description: "Extra double shot vanilla mocha",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagEspresso, TagVanilla},
	},
	{
		ID:          13,
		Shop:        "Moondollars",
		Name:        "Espresso",
		Description: "Espresso Roast with rich flavor and caramelly sweetness",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagEspresso},
	},
	{
		ID:          14,
		Shop:        "Moondollars",
		Name:        "Decaf Pike Place® Roast",
		Description: "From our first store in Seattle’s Pike Place Market",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagMedium, TagChocolate, TagNutty, TagDecaf},
	},
	{
		ID:          15,
		Shop:        "Moondollars",
		Name:        "Caffè Americano",
		Description: "Espresso shots topped with hot water",
		Prices:      map[Size]float64{SizeLarge: 3.99, SizeMedium: 2.99, SizeSmall: 1.99},
		Tags:        []Tag{TagEspresso},
	},
}
