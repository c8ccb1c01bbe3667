package domain

type FlagCategory string

const (
	CategoryClient      FlagCategory = "CLIENT"
	CategoryProject     FlagCategory = "PROJECT"
	CategoryPhase       FlagCategory = "PHASE"
	CategoryExpenseType FlagCategory = "EXPENSE_TYPE"
)

// FlagSubcategory disambiguates which report family a flag applies to.
type FlagSubcategory string

const (
	SubcategoryTask    FlagSubcategory = "TASK"
	SubcategoryExpense FlagSubcategory = "EXPENSE"
)

type BillingFlag struct {
	Category    FlagCategory
	Subcategory FlagSubcategory
	ItemValue   string
	NonBillable bool
}
