package model

// Category — категория транзакции, фиксированный набор значений,
// выбирается на клиенте из списка
type Category string

const (
	CategoryFoodDrinks     Category = "Food & Drinks"
	CategoryShopping       Category = "Shopping"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBills          Category = "Bills"
	CategoryIncome         Category = "Income"
	CategoryOther          Category = "Other"
)

// Categories возвращает все категории в порядке отображения на экране
func Categories() []Category {
	return []Category{
		CategoryFoodDrinks,
		CategoryShopping,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryBills,
		CategoryIncome,
		CategoryOther,
	}
}

// IsValid проверяет, что категория входит в фиксированный набор
func (c Category) IsValid() bool {
	switch c {
	case CategoryFoodDrinks, CategoryShopping, CategoryTransportation,
		CategoryEntertainment, CategoryBills, CategoryIncome, CategoryOther:
		return true
	}
	return false
}
