package types

// ExpenseCategory is the closed set of classifications used for the budget
// breakdown. Values outside this set may still arrive from the booking API
// and are tolerated: they count toward totals but drop out of the per-category
// breakdown.
type ExpenseCategory string

const (
	CategoryTransportation ExpenseCategory = "Transportation"
	CategoryAccommodation  ExpenseCategory = "Accommodation"
	CategoryFood           ExpenseCategory = "Food"
	CategoryEntertainment  ExpenseCategory = "Entertainment"
	CategoryShopping       ExpenseCategory = "Shopping"
	CategoryOther          ExpenseCategory = "Other"
)

// Categories lists the fixed categories in display order.
var Categories = []ExpenseCategory{
	CategoryTransportation,
	CategoryAccommodation,
	CategoryFood,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
}

// String provides a string representation of the category
func (c ExpenseCategory) String() string {
	return string(c)
}

// IsValid checks if the category is one of the fixed categories
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case CategoryTransportation, CategoryAccommodation, CategoryFood,
		CategoryEntertainment, CategoryShopping, CategoryOther:
		return true
	default:
		return false
	}
}

// Expense is a tracked travel expense as returned by the booking API.
// Amount is a non-negative currency value in full float precision; rounding
// happens at presentation time only.
type Expense struct {
	ExpenseID   string  `json:"expenseId"`
	UserID      string  `json:"userId,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// CreateExpenseRequest is the payload forwarded to the booking API when a
// user records a new expense.
type CreateExpenseRequest struct {
	UserID      string  `json:"userId"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required"`
	Date        string  `json:"date" binding:"required"`
}
