package catalog

import "minimalbites/internal/domain"

// menuItems is the fixed dataset served by the catalog. It is defined
// at process start and never mutated.
var menuItems = []domain.MenuItem{
	{
		ID:              1,
		Name:            "Classic Cheeseburger",
		Description:     "Juicy beef patty with melted cheddar, fresh lettuce, tomato, pickles, and our secret sauce on a toasted brioche bun.",
		Price:           12.99,
		ImageURL:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500",
		Category:        "burgers",
		Rating:          4.8,
		Reviews:         234,
		PreparationTime: "15-20 min",
		Calories:        650,
		Ingredients:     []string{"Beef Patty", "Cheddar Cheese", "Lettuce", "Tomato", "Pickles", "Secret Sauce", "Brioche Bun"},
		IsPopular:       true,
	},
	{
		ID:              2,
		Name:            "Margherita Pizza",
		Description:     "Traditional Italian pizza with San Marzano tomato sauce, fresh mozzarella, basil, and extra virgin olive oil.",
		Price:           14.99,
		ImageURL:        "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=500",
		Category:        "pizza",
		Rating:          4.9,
		Reviews:         189,
		PreparationTime: "20-25 min",
		Calories:        850,
		Ingredients:     []string{"Pizza Dough", "San Marzano Tomatoes", "Fresh Mozzarella", "Fresh Basil", "Olive Oil"},
		IsPopular:       true,
	},
	{
		ID:              3,
		Name:            "Chocolate Lava Cake",
		Description:     "Warm, gooey chocolate cake with a molten center, served with vanilla ice cream and fresh berries.",
		Price:           8.99,
		ImageURL:        "https://images.unsplash.com/photo-1551024601-bec78aea704b?w=500",
		Category:        "desserts",
		Rating:          4.7,
		Reviews:         156,
		PreparationTime: "10-15 min",
		Calories:        420,
		Ingredients:     []string{"Dark Chocolate", "Butter", "Eggs", "Sugar", "Flour", "Vanilla Ice Cream"},
		IsPopular:       true,
	},
	{
		ID:              4,
		Name:            "Tropical Smoothie",
		Description:     "Refreshing blend of mango, pineapple, banana, and coconut milk topped with chia seeds.",
		Price:           6.99,
		ImageURL:        "https://images.unsplash.com/photo-1544145945-f90425340c7e?w=500",
		Category:        "drinks",
		Rating:          4.6,
		Reviews:         98,
		PreparationTime: "5 min",
		Calories:        280,
		Ingredients:     []string{"Mango", "Pineapple", "Banana", "Coconut Milk", "Chia Seeds"},
		IsPopular:       true,
	},
	{
		ID:              5,
		Name:            "Caesar Salad",
		Description:     "Crisp romaine lettuce, parmesan cheese, croutons, and creamy Caesar dressing with grilled chicken.",
		Price:           11.99,
		ImageURL:        "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=500",
		Category:        "salads",
		Rating:          4.5,
		Reviews:         87,
		PreparationTime: "10 min",
		Calories:        380,
		Ingredients:     []string{"Romaine Lettuce", "Parmesan", "Croutons", "Caesar Dressing", "Grilled Chicken"},
	},
	{
		ID:              6,
		Name:            "Pepperoni Pizza",
		Description:     "Classic pepperoni pizza with mozzarella cheese and our signature tomato sauce on a crispy crust.",
		Price:           15.99,
		ImageURL:        "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=500",
		Category:        "pizza",
		Rating:          4.7,
		Reviews:         156,
		PreparationTime: "20-25 min",
		Calories:        920,
		Ingredients:     []string{"Pizza Dough", "Tomato Sauce", "Mozzarella", "Pepperoni"},
	},
	{
		ID:              7,
		Name:            "BBQ Bacon Burger",
		Description:     "Smoky BBQ sauce, crispy bacon, onion rings, and cheddar cheese on a premium beef patty.",
		Price:           14.99,
		ImageURL:        "https://images.unsplash.com/photo-1553979459-d2229ba7433b?w=500",
		Category:        "burgers",
		Rating:          4.8,
		Reviews:         198,
		PreparationTime: "15-20 min",
		Calories:        780,
		Ingredients:     []string{"Beef Patty", "Bacon", "BBQ Sauce", "Onion Rings", "Cheddar", "Bun"},
		IsNew:           true,
	},
	{
		ID:              8,
		Name:            "Iced Caramel Latte",
		Description:     "Espresso with cold milk, ice, and sweet caramel syrup, topped with whipped cream.",
		Price:           5.49,
		ImageURL:        "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=500",
		Category:        "drinks",
		Rating:          4.5,
		Reviews:         112,
		PreparationTime: "5 min",
		Calories:        250,
		Ingredients:     []string{"Espresso", "Milk", "Caramel Syrup", "Whipped Cream", "Ice"},
	},
	{
		ID:              9,
		Name:            "Garlic Bread",
		Description:     "Crispy baguette slices toasted with garlic butter and herbs, perfect as a starter.",
		Price:           4.99,
		ImageURL:        "https://images.unsplash.com/photo-1619535860434-ba1d8fa12536?w=500",
		Category:        "sides",
		Rating:          4.4,
		Reviews:         76,
		PreparationTime: "8 min",
		Calories:        220,
		Ingredients:     []string{"Baguette", "Garlic Butter", "Parsley", "Italian Herbs"},
	},
	{
		ID:              10,
		Name:            "Tiramisu",
		Description:     "Classic Italian dessert with layers of coffee-soaked ladyfingers and mascarpone cream.",
		Price:           7.99,
		ImageURL:        "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=500",
		Category:        "desserts",
		Rating:          4.9,
		Reviews:         143,
		PreparationTime: "Ready",
		Calories:        380,
		Ingredients:     []string{"Ladyfingers", "Mascarpone", "Espresso", "Cocoa", "Eggs"},
		IsNew:           true,
	},
	{
		ID:              11,
		Name:            "Greek Salad",
		Description:     "Fresh cucumbers, tomatoes, red onions, olives, and feta cheese with olive oil dressing.",
		Price:           10.99,
		ImageURL:        "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=500",
		Category:        "salads",
		Rating:          4.6,
		Reviews:         92,
		PreparationTime: "8 min",
		Calories:        320,
		Ingredients:     []string{"Cucumber", "Tomatoes", "Red Onion", "Kalamata Olives", "Feta Cheese", "Olive Oil"},
	},
	{
		ID:              12,
		Name:            "French Fries",
		Description:     "Golden crispy fries seasoned with sea salt, served with ketchup and mayo.",
		Price:           3.99,
		ImageURL:        "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=500",
		Category:        "sides",
		Rating:          4.3,
		Reviews:         234,
		PreparationTime: "10 min",
		Calories:        365,
		Ingredients:     []string{"Potatoes", "Sea Salt", "Vegetable Oil"},
	},
}
