package report

import (
	"context"
	"sort"

	"github.com/pdcgo/site_ledger_service/authorization"
	"github.com/pdcgo/site_ledger_service/ledger_model"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const trendMonths = 6

type CategoryTotal struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
}

type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type DashboardResult struct {
	Today        ledger_model.Date `json:"today"`
	TodayExpense decimal.Decimal   `json:"today_expense"`
	MonthExpense decimal.Decimal   `json:"month_expense"`
	UnpaidTotal  decimal.Decimal   `json:"unpaid_total"`
	SiteCount    int64             `json:"site_count"`
	ByCategory   []*CategoryTotal  `json:"by_category"`
	Monthly      []*MonthTotal     `json:"monthly"`
}

func (r *reportServiceImpl) Dashboard(ctx context.Context, identity authorization.Identity, today ledger_model.Date) (*DashboardResult, error) {
	var err error

	err = authorization.NewAuthIdentity(identity).HasPermission(readPermission()).Err()
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "report.Dashboard")
	defer span.End()

	monthStart := today.FirstOfMonth()
	trendStart := monthStart.AddMonths(-(trendMonths - 1))

	expenses := []*ledger_model.Expense{}
	var unpaid struct {
		Total decimal.Decimal
	}
	var siteCount int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.fetchLimit)

	g.Go(func() error {
		return r.db.
			WithContext(gctx).
			Model(&ledger_model.Expense{}).
			Preload("Category").
			Where("expenses.date >= ?", trendStart).
			Where("expenses.date <= ?", today).
			Find(&expenses).
			Error
	})

	g.Go(func() error {
		return r.db.
			WithContext(gctx).
			Model(&ledger_model.Expense{}).
			Select("COALESCE(SUM(amount), 0) AS total").
			Where("payment_status = ?", ledger_model.PaymentUnpaid).
			Scan(&unpaid).
			Error
	})

	g.Go(func() error {
		return r.db.
			WithContext(gctx).
			Model(&ledger_model.Site{}).
			Count(&siteCount).
			Error
	})

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	result := DashboardResult{
		Today:        today,
		TodayExpense: decimal.Zero,
		MonthExpense: decimal.Zero,
		UnpaidTotal:  unpaid.Total,
		SiteCount:    siteCount,
		ByCategory:   []*CategoryTotal{},
		Monthly:      make([]*MonthTotal, 0, trendMonths),
	}

	monthly := map[string]*MonthTotal{}
	for i := 0; i < trendMonths; i++ {
		item := &MonthTotal{
			Month: trendStart.AddMonths(i).Format("2006-01"),
			Total: decimal.Zero,
		}
		monthly[item.Month] = item
		result.Monthly = append(result.Monthly, item)
	}

	byCategory := map[string]*CategoryTotal{}
	for _, exp := range expenses {
		if item := monthly[exp.Date.Format("2006-01")]; item != nil {
			item.Total = item.Total.Add(exp.Amount)
		}

		if exp.Date.Equal(today.Time) {
			result.TodayExpense = result.TodayExpense.Add(exp.Amount)
		}

		if exp.Date.Before(monthStart.Time) {
			continue
		}

		result.MonthExpense = result.MonthExpense.Add(exp.Amount)

		item := byCategory[exp.CategoryID]
		if item == nil {
			item = &CategoryTotal{
				CategoryID: exp.CategoryID,
				Total:      decimal.Zero,
			}
			if exp.Category != nil {
				item.CategoryName = exp.Category.CategoryName
			}
			byCategory[exp.CategoryID] = item
			result.ByCategory = append(result.ByCategory, item)
		}
		item.Total = item.Total.Add(exp.Amount)
	}

	sort.SliceStable(result.ByCategory, func(i, j int) bool {
		return result.ByCategory[i].Total.GreaterThan(result.ByCategory[j].Total)
	})

	return &result, nil
}
