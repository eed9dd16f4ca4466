package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "clarity/internal/errors"
	"clarity/internal/models"
)

// dashboardService computes read-only aggregates over a user's transactions.
// Nothing here is persisted.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

func (s *dashboardService) sumByType(userID uint, transactionType models.TransactionType) (int64, error) {
	var total int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, transactionType).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// GetStats returns total income, total expense, balance, and transaction
// count for a user. An empty transaction set yields all zeros.
func (s *dashboardService) GetStats(userID uint) (*DashboardStats, error) {
	totalIncome, err := s.sumByType(userID, models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}

	totalExpense, err := s.sumByType(userID, models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &DashboardStats{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Balance:          totalIncome - totalExpense,
		TransactionCount: count,
	}, nil
}

// GetCategoryBreakdown returns per-category totals for one transaction type.
// Only categories with at least one matching transaction appear; each row
// carries its share of the type total as a percentage.
func (s *dashboardService) GetCategoryBreakdown(userID uint, transactionType models.TransactionType) ([]CategoryBreakdown, error) {
	if err := validateTransactionType(transactionType); err != nil {
		return nil, err
	}

	var rows []CategoryBreakdown
	err := s.db.Model(&models.Transaction{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ?", userID, transactionType).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var grandTotal int64
	for _, r := range rows {
		grandTotal += r.Total
	}
	if grandTotal > 0 {
		for i := range rows {
			rows[i].Percentage = float64(rows[i].Total) / float64(grandTotal) * 100
		}
	}

	if rows == nil {
		rows = []CategoryBreakdown{}
	}
	return rows, nil
}

// GetMonthlySummary returns per-month income and expense totals in ascending
// chronological order. Months without transactions are absent, never
// zero-filled. A positive months argument restricts the series to the last N
// calendar months including the current one; zero means unbounded.
// Grouping happens in Go, not SQL; month truncation differs between
// PostgreSQL and SQLite.
func (s *dashboardService) GetMonthlySummary(userID uint, months int) ([]MonthlySummary, error) {
	q := s.db.Model(&models.Transaction{}).
		Select("type, amount, date").
		Where("user_id = ?", userID)

	if months > 0 {
		now := time.Now()
		cutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
			AddDate(0, -(months - 1), 0)
		q = q.Where("date >= ?", cutoff)
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type monthKey struct {
		year  int
		month int
	}
	buckets := make(map[monthKey]*MonthlySummary)
	for _, t := range transactions {
		key := monthKey{year: t.Date.Year(), month: int(t.Date.Month())}
		entry, ok := buckets[key]
		if !ok {
			entry = &MonthlySummary{Year: key.year, Month: key.month}
			buckets[key] = entry
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			entry.Income += t.Amount
		case models.TransactionTypeExpense:
			entry.Expense += t.Amount
		}
	}

	summaries := make([]MonthlySummary, 0, len(buckets))
	for _, entry := range buckets {
		summaries = append(summaries, *entry)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year < summaries[j].Year
		}
		return summaries[i].Month < summaries[j].Month
	})

	return summaries, nil
}
