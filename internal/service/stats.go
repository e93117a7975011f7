package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/MDMahidul/bistro-boss-server/internal/repository"
)

type FleetStats struct {
	Users    int64
	Products int64
	Orders   int64
	Revenue  decimal.Decimal
}

type CategoryStat struct {
	Category string
	Count    int64
	Total    decimal.Decimal
}

// StatsService computes read-only summaries over persisted payments. Counts
// are point-in-time estimates under concurrent writes; revenue and totals
// are exact decimal sums.
type StatsService struct {
	users    *repository.UserRepo
	menu     *repository.MenuRepo
	payments *repository.PaymentRepo
}

func NewStatsService(users *repository.UserRepo, menu *repository.MenuRepo, payments *repository.PaymentRepo) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments}
}

func (s *StatsService) Fleet(ctx context.Context) (*FleetStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.menu.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.payments.Count(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, p := range all {
		revenue = revenue.Add(p.Price)
	}
	return &FleetStats{Users: users, Products: products, Orders: orders, Revenue: revenue}, nil
}

// Categories resolves every line item of every payment to its menu item and
// groups by category. Line items whose menu item no longer exists are
// skipped; a dangling reference never fails the report.
func (s *StatsService) Categories(ctx context.Context) ([]CategoryStat, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}

	idSet := map[string]struct{}{}
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	items, err := s.menu.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(items))
	for i := range items {
		byID[items[i].ID] = i
	}

	grouped := map[string]*CategoryStat{}
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			i, ok := byID[id]
			if !ok {
				continue
			}
			item := items[i]
			g, ok := grouped[item.Category]
			if !ok {
				g = &CategoryStat{Category: item.Category, Total: decimal.Zero}
				grouped[item.Category] = g
			}
			g.Count++
			g.Total = g.Total.Add(item.Price)
		}
	}

	out := make([]CategoryStat, 0, len(grouped))
	for _, g := range grouped {
		g.Total = g.Total.Round(2)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}
