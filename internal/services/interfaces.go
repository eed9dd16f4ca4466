package services

import (
	"time"

	"clarity/internal/models"
	"clarity/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, fullName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionFilter holds optional filter parameters for listing transactions.
// Date bounds are inclusive.
type TransactionFilter struct {
	Category  *string
	Type      *models.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionFields holds optional fields for a partial transaction update.
// Nil fields are left unchanged.
type TransactionFields struct {
	Type        *models.TransactionType
	Amount      *int64
	Category    *string
	Description *string
	Date        *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, transactionType models.TransactionType, amount int64, category, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	GetUserCategories(userID uint) ([]string, error)
}

// DashboardStats contains aggregate totals over a user's transactions.
type DashboardStats struct {
	TotalIncome      int64 `json:"total_income"`
	TotalExpense     int64 `json:"total_expense"`
	Balance          int64 `json:"balance"`
	TransactionCount int64 `json:"transaction_count"`
}

// CategoryBreakdown contains the total for one category of a given type.
type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// MonthlySummary contains income and expense totals for one calendar month.
type MonthlySummary struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// DashboardServicer defines the contract for dashboard aggregation.
type DashboardServicer interface {
	GetStats(userID uint) (*DashboardStats, error)
	GetCategoryBreakdown(userID uint, transactionType models.TransactionType) ([]CategoryBreakdown, error)
	GetMonthlySummary(userID uint, months int) ([]MonthlySummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
