package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// Category represents a transaction category label owned by a user.
// Transactions reference categories by name, not by foreign key:
// deleting or renaming a category leaves past transactions untouched.
type Category struct {
	Base
	UserID string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string       `gorm:"not null" json:"name"`
	Type   CategoryType `gorm:"not null" json:"type"`
}

// DefaultCategoryName is the category label applied to transactions
// created without one.
const DefaultCategoryName = "Outros"

// DefaultCategories returns the fixed category set seeded for a new
// user at registration.
func DefaultCategories(userID string) []Category {
	return []Category{
		{UserID: userID, Name: "Alimentação", Type: CategoryTypeExpense},
		{UserID: userID, Name: "Moradia", Type: CategoryTypeExpense},
		{UserID: userID, Name: "Transporte", Type: CategoryTypeExpense},
		{UserID: userID, Name: "Lazer", Type: CategoryTypeExpense},
		{UserID: userID, Name: "Saúde", Type: CategoryTypeExpense},
		{UserID: userID, Name: "Mercado", Type: CategoryTypeExpense},
		{UserID: userID, Name: "Salário", Type: CategoryTypeIncome},
		{UserID: userID, Name: "Investimento", Type: CategoryTypeIncome},
		{UserID: userID, Name: DefaultCategoryName, Type: CategoryTypeExpense},
	}
}
