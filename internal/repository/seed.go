package repository

import "github.com/marian079/crusty-kiosk/internal/model"

// DefaultCatalog returns the stock kiosk menu. Icons are Lucide icon
// names resolved by the UI. The same catalog is seeded into Postgres by
// the migrations.
func DefaultCatalog() ([]model.Category, []model.Product) {
	categories := []model.Category{
		{ID: "burgers", Name: "Burgers", Icon: "Beef"},
		{ID: "sides", Name: "Sides", Icon: "Salad"},
		{ID: "drinks", Name: "Drinks", Icon: "Coffee"},
		{ID: "desserts", Name: "Desserts", Icon: "IceCream2"},
	}

	products := []model.Product{
		{ID: "burger-1", Name: "Classic Cheeseburger", Description: "Beef patty, cheddar, lettuce, tomato and house sauce", Price: "24.99", CategoryID: "burgers"},
		{ID: "burger-2", Name: "Double Burger", Description: "Two beef patties, double cheese, crispy bacon, caramelized onion", Price: "34.99", CategoryID: "burgers"},
		{ID: "burger-3", Name: "Chicken Burger", Description: "Crispy chicken breast, lettuce, garlic mayo", Price: "22.99", CategoryID: "burgers"},
		{ID: "burger-4", Name: "Veggie Burger", Description: "Vegetarian patty, avocado, arugula, chimichurri", Price: "21.99", CategoryID: "burgers"},
		{ID: "burger-5", Name: "BBQ Bacon Burger", Description: "Beef patty, smoked bacon, onion rings, BBQ sauce", Price: "29.99", CategoryID: "burgers"},
		{ID: "burger-6", Name: "Spicy Jalapeño Burger", Description: "Spicy beef, jalapeños, pepper jack, chipotle sauce", Price: "26.99", CategoryID: "burgers"},
		{ID: "side-1", Name: "French Fries", Description: "Golden crispy fries, large portion", Price: "9.99", CategoryID: "sides"},
		{ID: "side-2", Name: "Potato Wedges", Description: "Skin-on wedges seasoned with herbs", Price: "11.99", CategoryID: "sides"},
		{ID: "side-3", Name: "Onion Rings", Description: "Breaded onion rings with ranch dip", Price: "10.99", CategoryID: "sides"},
		{ID: "side-4", Name: "Chicken Nuggets", Description: "8 crispy nuggets with a dip of your choice", Price: "14.99", CategoryID: "sides"},
		{ID: "side-5", Name: "Mozzarella Sticks", Description: "6 breaded mozzarella sticks with marinara", Price: "13.99", CategoryID: "sides"},
		{ID: "drink-1", Name: "Coca-Cola", Description: "Sparkling soft drink, 500ml", Price: "6.99", CategoryID: "drinks"},
		{ID: "drink-2", Name: "Fanta", Description: "Orange-flavored soft drink, 500ml", Price: "6.99", CategoryID: "drinks"},
		{ID: "drink-3", Name: "Sprite", Description: "Lemon-lime soda, 500ml", Price: "6.99", CategoryID: "drinks"},
		{ID: "drink-4", Name: "Mineral Water", Description: "Still or sparkling mineral water, 500ml", Price: "4.99", CategoryID: "drinks"},
		{ID: "drink-5", Name: "Fresh Lemonade", Description: "Fresh lemonade with lemon and mint, 400ml", Price: "8.99", CategoryID: "drinks"},
		{ID: "drink-6", Name: "Vanilla Milkshake", Description: "Creamy vanilla milkshake, 400ml", Price: "12.99", CategoryID: "drinks"},
		{ID: "drink-7", Name: "Chocolate Milkshake", Description: "Creamy Belgian chocolate milkshake, 400ml", Price: "12.99", CategoryID: "drinks"},
		{ID: "dessert-1", Name: "Ice Cream Sundae", Description: "Vanilla ice cream with chocolate topping and whipped cream", Price: "11.99", CategoryID: "desserts"},
		{ID: "dessert-2", Name: "Apple Pie", Description: "Warm apple pie served with vanilla ice cream", Price: "13.99", CategoryID: "desserts"},
		{ID: "dessert-3", Name: "Chocolate Brownie", Description: "Warm brownie with Belgian chocolate and walnuts", Price: "14.99", CategoryID: "desserts"},
		{ID: "dessert-4", Name: "Cookies", Description: "3 chocolate chip cookies, fresh from the oven", Price: "9.99", CategoryID: "desserts"},
		{ID: "dessert-5", Name: "Cheesecake", Description: "NY-style cheesecake with berry topping", Price: "16.99", CategoryID: "desserts"},
	}

	return categories, products
}
