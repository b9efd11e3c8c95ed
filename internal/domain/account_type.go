package domain

// Polarity is the normal balance side of an account type: the side whose
// entries increase the balance of accounts of that type.
type Polarity string

const (
	// PolarityDebit accumulates on debit (assets, expenses).
	PolarityDebit Polarity = "debit"
	// PolarityCredit accumulates on credit (income, liabilities, equity).
	PolarityCredit Polarity = "credit"
)

// IsValid reports whether p is one of the two known polarities.
func (p Polarity) IsValid() bool {
	return p == PolarityDebit || p == PolarityCredit
}

// AccountType classifies an account. The set is fixed reference data seeded
// once; a subtype points at its parent via ParentTypeID and inherits the
// parent's polarity in the seed.
type AccountType struct {
	ID           int32
	Name         string
	ParentTypeID *int32
	IsSubtype    bool
	Polarity     Polarity
}

// Well-known seed type ids.
const (
	TypeIncome              int32 = 1
	TypeExpense             int32 = 2
	TypeAssets              int32 = 3
	TypeFixedAssets         int32 = 4
	TypeCurrentAssets       int32 = 5
	TypeLiability           int32 = 6
	TypeCurrentLiability    int32 = 7
	TypeNonCurrentLiability int32 = 8
	TypeEquity              int32 = 9
	TypeOthers              int32 = 10
	TypeOtherAssets         int32 = 11
	TypeOtherIncomes        int32 = 12
	TypeOtherExpenses       int32 = 13
	TypeCostOfGoodsSold     int32 = 14
)

func ptr(i int32) *int32 { return &i }

// SeedAccountTypes returns the full reference set, as written by the seed
// migration. Polarity is assigned here, once, instead of being inferred from
// names at recalculation time.
func SeedAccountTypes() []AccountType {
	return []AccountType{
		{ID: TypeIncome, Name: "Income", Polarity: PolarityCredit},
		{ID: TypeExpense, Name: "Expense", Polarity: PolarityDebit},
		{ID: TypeAssets, Name: "Assets", Polarity: PolarityDebit},
		{ID: TypeFixedAssets, Name: "Fixed Assets", ParentTypeID: ptr(TypeAssets), IsSubtype: true, Polarity: PolarityDebit},
		{ID: TypeCurrentAssets, Name: "Current Assets", ParentTypeID: ptr(TypeAssets), IsSubtype: true, Polarity: PolarityDebit},
		{ID: TypeLiability, Name: "Liability", Polarity: PolarityCredit},
		{ID: TypeCurrentLiability, Name: "Current Liability", ParentTypeID: ptr(TypeLiability), IsSubtype: true, Polarity: PolarityCredit},
		{ID: TypeNonCurrentLiability, Name: "Non-Current Liabilities", ParentTypeID: ptr(TypeLiability), IsSubtype: true, Polarity: PolarityCredit},
		{ID: TypeEquity, Name: "Equity", Polarity: PolarityCredit},
		{ID: TypeOthers, Name: "Others", Polarity: PolarityCredit},
		{ID: TypeOtherAssets, Name: "Other Assets", ParentTypeID: ptr(TypeOthers), IsSubtype: true, Polarity: PolarityDebit},
		{ID: TypeOtherIncomes, Name: "Other Incomes", ParentTypeID: ptr(TypeOthers), IsSubtype: true, Polarity: PolarityCredit},
		{ID: TypeOtherExpenses, Name: "Other Expenses", ParentTypeID: ptr(TypeOthers), IsSubtype: true, Polarity: PolarityDebit},
		{ID: TypeCostOfGoodsSold, Name: "Cost Of Goods Sold", ParentTypeID: ptr(TypeOthers), IsSubtype: true, Polarity: PolarityDebit},
	}
}
