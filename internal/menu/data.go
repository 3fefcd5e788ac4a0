package menu

var menuItems = []Item{
	{Name: "Cafe Special Combo", Category: "Combos", Price: 249},
	{Name: "Burger + Fries Combo", Category: "Combos", Price: 199},
	{Name: "Pizza + Mojito Combo", Category: "Combos", Price: 299},

	{Name: "Classic Veg Burger", Category: "Burger", Price: 99},
	{Name: "Cheese Burst Burger", Category: "Burger", Price: 129},
	{Name: "Crispy Chicken Burger", Category: "Burger", Price: 149},

	{Name: "Chocolate Brownie", Category: "Dessert & Ice Cream", Price: 120},
	{Name: "Sizzling Brownie with Ice Cream", Category: "Dessert & Ice Cream", Price: 180},

	{Name: "Watermelon Juice", Category: "Fresh Juice", Price: 80},
	{Name: "Sweet Lime Juice", Category: "Fresh Juice", Price: 90},
	{Name: "Pineapple Juice", Category: "Fresh Juice", Price: 90},

	{Name: "Oreo Milkshake", Category: "Milkshake", Price: 140},
	{Name: "Chocolate Milkshake", Category: "Milkshake", Price: 130},
	{Name: "Mango Milkshake", Category: "Milkshake", Price: 130},

	{Name: "Virgin Mojito", Category: "Mojito", Price: 99},
	{Name: "Green Apple Mojito", Category: "Mojito", Price: 110},
	{Name: "Blue Lagoon Mojito", Category: "Mojito", Price: 110},

	{Name: "Chicken Steamed Momos", Category: "Momos - Non-Veg", Price: 120},
	{Name: "Chicken Fried Momos", Category: "Momos - Non-Veg", Price: 140},

	{Name: "Veg Steamed Momos", Category: "Momos - Veg", Price: 90},
	{Name: "Paneer Fried Momos", Category: "Momos - Veg", Price: 120},

	{Name: "Chicken Tikka Pizza", Category: "Pizza - Non-Veg", Price: 249},
	{Name: "BBQ Chicken Pizza", Category: "Pizza - Non-Veg", Price: 269},

	{Name: "Margherita Pizza", Category: "Pizza - Veg", Price: 179},
	{Name: "Farmhouse Pizza", Category: "Pizza - Veg", Price: 219},
	{Name: "Paneer Tikka Pizza", Category: "Pizza - Veg", Price: 229},

	{Name: "Grilled Chicken Sandwich", Category: "Sandwich - Non-Veg", Price: 130},
	{Name: "Veg Club Sandwich", Category: "Sandwich - Veg", Price: 110},

	{Name: "Vanilla Scoop", Category: "Ice Cream (Single Scoop)", Price: 60},
	{Name: "Butterscotch Scoop", Category: "Ice Cream (Single Scoop)", Price: 70},

	{Name: "Paneer Tikka", Category: "Starters - Veg", Price: 160},
	{Name: "Crispy Corn", Category: "Starters - Veg", Price: 140},
}
