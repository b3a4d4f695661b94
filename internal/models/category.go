package models

// Category is one of the fixed spending categories an expense or budget targets.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBills          Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryTravel         Category = "Travel"
	CategoryEducation      Category = "Education"
	CategoryOther          Category = "Other"
)

var allCategories = []Category{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthcare,
	CategoryTravel,
	CategoryEducation,
	CategoryOther,
}

// AllCategories returns the closed category set in display order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether c belongs to the category set.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PaymentMethod records how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodBank    PaymentMethod = "bank"
	PaymentMethodDigital PaymentMethod = "digital"
)

// AllPaymentMethods returns every supported payment method.
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCard, PaymentMethodCash, PaymentMethodBank, PaymentMethodDigital}
}

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodBank, PaymentMethodDigital:
		return true
	}
	return false
}
