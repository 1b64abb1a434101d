package seed

import "food-delivery-db/models"

// Restaurants is the sample catalog: five restaurants with three menu items each.
var Restaurants = []models.Restaurant{
	{
		Name:        "Spice Garden",
		Address:     "123 MG Road, Bangalore",
		Phone:       "9876543210",
		Rating:      4.5,
		CuisineType: "Indian",
		IsActive:    true,
		MenuItems: []models.MenuItem{
			{Name: "Butter Chicken", Description: "Creamy tomato curry with tender chicken", Price: 12.99, Category: "Main Course", IsAvailable: true},
			{Name: "Paneer Tikka", Description: "Grilled cottage cheese with spices", Price: 9.99, Category: "Appetizer", IsAvailable: true},
			{Name: "Garlic Naan", Description: "Tandoor bread brushed with garlic butter", Price: 2.99, Category: "Bread", IsAvailable: true},
		},
	},
	{
		Name:        "Pizza Paradise",
		Address:     "45 Park Street, Kolkata",
		Phone:       "9876543211",
		Rating:      4.2,
		CuisineType: "Italian",
		IsActive:    true,
		MenuItems: []models.MenuItem{
			{Name: "Margherita Pizza", Description: "Tomato, mozzarella and basil", Price: 10.99, Category: "Pizza", IsAvailable: true},
			{Name: "Pepperoni Pizza", Description: "Loaded with pepperoni and cheese", Price: 12.99, Category: "Pizza", IsAvailable: true},
			{Name: "Garlic Bread", Description: "Toasted bread with garlic and herbs", Price: 4.99, Category: "Sides", IsAvailable: true},
		},
	},
	{
		Name:        "Dragon Wok",
		Address:     "78 Linking Road, Mumbai",
		Phone:       "9876543212",
		Rating:      4.0,
		CuisineType: "Chinese",
		IsActive:    true,
		MenuItems: []models.MenuItem{
			{Name: "Kung Pao Chicken", Description: "Spicy stir-fried chicken with peanuts", Price: 11.99, Category: "Main Course", IsAvailable: true},
			{Name: "Veg Fried Rice", Description: "Wok-tossed rice with vegetables", Price: 8.99, Category: "Rice", IsAvailable: true},
			{Name: "Spring Rolls", Description: "Crispy rolls with vegetable filling", Price: 5.99, Category: "Appetizer", IsAvailable: true},
		},
	},
	{
		Name:        "Burger Barn",
		Address:     "12 Connaught Place, Delhi",
		Phone:       "9876543213",
		Rating:      3.8,
		CuisineType: "American",
		IsActive:    true,
		MenuItems: []models.MenuItem{
			{Name: "Classic Cheeseburger", Description: "Beef patty with cheddar and pickles", Price: 9.49, Category: "Burgers", IsAvailable: true},
			{Name: "Bacon Double Burger", Description: "Two patties with crispy bacon", Price: 11.99, Category: "Burgers", IsAvailable: true},
			{Name: "French Fries", Description: "Golden salted fries", Price: 3.49, Category: "Sides", IsAvailable: true},
		},
	},
	{
		Name:        "Taco Fiesta",
		Address:     "56 Anna Salai, Chennai",
		Phone:       "9876543214",
		Rating:      4.3,
		CuisineType: "Mexican",
		IsActive:    true,
		MenuItems: []models.MenuItem{
			{Name: "Chicken Tacos", Description: "Three soft tacos with grilled chicken", Price: 8.99, Category: "Tacos", IsAvailable: true},
			{Name: "Beef Burrito", Description: "Rice, beans and seasoned beef", Price: 10.49, Category: "Burritos", IsAvailable: true},
			{Name: "Nachos Supreme", Description: "Tortilla chips with cheese and salsa", Price: 7.99, Category: "Appetizer", IsAvailable: true},
		},
	},
}

var DeliveryPersonnel = []models.DeliveryPersonnel{
	{Name: "Rahul Sharma", Phone: "9123456780", VehicleType: "Bike", IsAvailable: true, CurrentLocation: "Koramangala, Bangalore", Rating: 4.7},
	{Name: "Priya Patel", Phone: "9123456781", VehicleType: "Scooter", IsAvailable: true, CurrentLocation: "Andheri, Mumbai", Rating: 4.8},
	{Name: "Amit Kumar", Phone: "9123456782", VehicleType: "Bicycle", IsAvailable: true, CurrentLocation: "Salt Lake, Kolkata", Rating: 4.5},
}
