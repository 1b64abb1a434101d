package models

// All returns one value of every table model, parents before children.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Restaurant{},
		&MenuItem{},
		&DeliveryPersonnel{},
		&Order{},
		&OrderItem{},
		&Review{},
		&OrderDelivery{},
	}
}

// TableNames lists the eight tables in the same order as All.
func TableNames() []string {
	return []string{
		User{}.TableName(),
		Restaurant{}.TableName(),
		MenuItem{}.TableName(),
		DeliveryPersonnel{}.TableName(),
		Order{}.TableName(),
		OrderItem{}.TableName(),
		Review{}.TableName(),
		OrderDelivery{}.TableName(),
	}
}
