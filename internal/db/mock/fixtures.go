package mock

var tagNames = []string{
	"vegetarian", "vegan", "gluten-free", "halal", "keto", "dairy-free",
	"spicy", "healthy", "protein-rich", "low-carb", "comfort-food", "asian",
	"mediterranean", "mexican", "italian", "american",
}

var ingredientNames = []string{
	"Chicken Breast", "Rice", "Broccoli", "Olive Oil", "Garlic",
	"Soy Sauce", "Tofu", "Bell Peppers", "Onions", "Tomatoes",
	"Pasta", "Cheese", "Spinach", "Black Beans", "Avocado",
	"Lime", "Cilantro", "Tortillas", "Ground Beef", "Lettuce",
	"Sourdough Bread", "Feta Cheese", "Cherry Tomatoes", "Balsamic Glaze",
	"Jasmine Rice", "Mixed Vegetables", "Sesame Oil", "Eggs",
	"Peas", "Carrots", "Green Onions", "Quinoa", "Chickpeas",
	"Tahini", "Corn Tortillas", "Cabbage", "Spicy Mayo",
	"Mozzarella Cheese", "Basil", "San Marzano Tomatoes", "Mushrooms",
	"Red Onions", "Olives", "Pepperoni", "Sausage", "Ham", "Bacon",
	"Teriyaki Sauce", "Beef Bulgogi", "Kimchi", "Sesame Seeds",
	"Sweet Potato", "Kale", "Lemon", "Rice Noodles", "Shrimp",
	"Bean Sprouts", "Peanuts", "Tamarind Sauce", "Miso", "Soft-boiled Egg",
	"Corn", "Romaine Lettuce", "Parmesan", "Croutons", "Caesar Dressing",
	"Mixed Greens", "Cucumber", "Greek Vinaigrette", "Mandarin Oranges",
	"Sesame Dressing", "Dried Cranberries", "Almonds", "Blue Cheese",
	"Ranch Dressing", "Sweet Potatoes", "Chipotle Aioli", "Tortilla Chips",
	"Jalapeños", "Sour Cream", "Guacamole", "Cauliflower", "Buffalo Sauce",
}

type recipeFixture struct {
	name         string
	instructions string
	prepTime     int
	cost         float64
	author       int
	image        string
	tags         []string
}

// Reviews and favorites refer to recipes by their one-based position here.
var recipeFixtures = []recipeFixture{
	{
		name:         "Margherita Pizza",
		instructions: "Classic pizza with fresh mozzarella, basil, and San Marzano tomato sauce.",
		prepTime:     35,
		cost:         18.95,
		author:       0,
		image:        "https://ooni.com/cdn/shop/articles/20220211142347-margherita-9920_ba86be55-674e-4f35-8094-2067ab41a671.jpg?v=1737104576&width=400",
		tags:         []string{"vegetarian", "italian"},
	},
	{
		name:         "Caesar Salad",
		instructions: "Crisp romaine lettuce with parmesan, croutons, and classic Caesar dressing.",
		prepTime:     10,
		cost:         11.95,
		author:       0,
		image:        "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400&h=300&fit=crop&auto=format",
		tags:         []string{"vegetarian", "low-carb"},
	},
	{
		name:         "Grilled Chicken Sandwich",
		instructions: "Juicy grilled chicken breast with fresh lettuce and tomato on brioche bun.",
		prepTime:     20,
		cost:         14.95,
		author:       0,
		image:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop&auto=format",
		tags:         []string{"protein-rich"},
	},
	{
		name:         "Vegetarian Bowl",
		instructions: "Nutritious bowl with quinoa, roasted vegetables, chickpeas, and tahini dressing.",
		prepTime:     30,
		cost:         15.00,
		author:       1,
		image:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop&auto=format",
		tags:         []string{"vegetarian", "healthy", "gluten-free"},
	},
	{
		name:         "Sweet Potato Fries",
		instructions: "Crispy sweet potato fries served with chipotle aioli.",
		prepTime:     15,
		cost:         7.95,
		author:       1,
		image:        "https://images.unsplash.com/photo-1576013551627-0cc20b96c2a7?w=400&h=300&fit=crop&auto=format",
		tags:         []string{"vegetarian", "healthy"},
	},
	{
		name:         "Grilled Fish Tacos",
		instructions: "Fresh grilled fish with cabbage slaw and lime crema in soft tortillas.",
		prepTime:     25,
		cost:         17.50,
		author:       0,
		image:        "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop&auto=format",
		tags:         []string{"mexican", "protein-rich"},
	},
	{
		name:         "Chicken Protein Bowl",
		instructions: "High-protein bowl with grilled chicken, quinoa, and fresh vegetables.",
		prepTime:     28,
		cost:         16.95,
		author:       0,
		image:        "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400&h=300&fit=crop&auto=format",
		tags:         []string{"protein-rich", "healthy"},
	},
	{
		name:         "Crispy Fries",
		instructions: "Golden crispy french fries seasoned to perfection.",
		prepTime:     12,
		cost:         6.95,
		author:       1,
		image:        "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400&h=300&fit=crop&auto=format",
		tags:         []string{"vegetarian"},
	},
	{
		name:         "Veggie Pizza",
		instructions: "Delicious vegetarian pizza loaded with fresh vegetables and cheese.",
		prepTime:     32,
		cost:         19.95,
		author:       1,
		image:        "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400&h=300&fit=crop&auto=format",
		tags:         []string{"vegetarian", "italian"},
	},
}

type reviewFixture struct {
	recipe  int
	user    int
	rating  int
	comment string
}

var reviewFixtures = []reviewFixture{
	{1, 0, 5, "Amazing flavor! Quick and easy to make."},
	{1, 1, 4, "Good recipe, but I added more vegetables."},
	{2, 2, 5, "Perfect meal prep option. Healthy and delicious!"},
	{3, 1, 4, "Love the crispy tofu. Will make again!"},
	{4, 3, 5, "Classic comfort food. My go-to pasta recipe."},
}

type favoriteFixture struct {
	user   int
	recipe int
}

var favoriteFixtures = []favoriteFixture{
	{0, 1}, {0, 2}, {1, 4}, {1, 5},
}
