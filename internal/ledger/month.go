package ledger

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthSummary aggregates a user's ledger activity for one month. All sums
// are in integer minor units; Spent is reported as a positive number.
type MonthSummary struct {
	Month          types.Month                      `json:"month"`
	Income         int64                            `json:"income"`
	Spent          int64                            `json:"spent"`
	TransferVolume int64                            `json:"transferVolume"`
	Net            int64                            `json:"net"`
	Spending       map[models.CategoryType]Spending `json:"spending"`
}

// Spending is the expense total attributed to one category type and its
// share of the month's overall spending.
type Spending struct {
	Total int64           `json:"total"`
	Share decimal.Decimal `json:"share"`
}

// MonthSummary computes the monthly budget summary for a user. An unknown
// user is reported as not found.
func (l *Ledger) MonthSummary(userID uuid.UUID, month types.Month) (MonthSummary, error) {
	summary := MonthSummary{
		Month:    month,
		Spending: make(map[models.CategoryType]Spending),
	}

	if err := l.db.First(&models.User{}, userID).Error; err != nil {
		return MonthSummary{}, err
	}

	from := month.FirstInstant()
	until := month.AddDate(0, 1).FirstInstant()

	var transactions []models.Transaction
	err := l.db.
		Preload("SubCategory").
		Preload("SubCategory.Category").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.user_id = ?", userID).
		Where("datetime(transactions.date) >= datetime(?) AND datetime(transactions.date) < datetime(?)", from, until).
		Find(&transactions).Error
	if err != nil {
		return MonthSummary{}, err
	}

	totals := make(map[models.CategoryType]int64)
	for _, transaction := range transactions {
		switch transaction.Type {
		case models.TransactionTypeIncome:
			summary.Income += transaction.Value
		case models.TransactionTypeExpense:
			spent := -transaction.Value
			summary.Spent += spent

			if transaction.SubCategory != nil {
				totals[transaction.SubCategory.Category.Type] += spent
			}
		case models.TransactionTypeTransfer:
			if transaction.Value < 0 {
				summary.TransferVolume += -transaction.Value
			} else {
				summary.TransferVolume += transaction.Value
			}
		}

		summary.Net += transaction.Value
	}

	for categoryType, total := range totals {
		share := decimal.Zero
		if summary.Spent != 0 {
			share = decimal.NewFromInt(total).Div(decimal.NewFromInt(summary.Spent))
		}

		summary.Spending[categoryType] = Spending{
			Total: total,
			Share: share,
		}
	}

	return summary, nil
}
