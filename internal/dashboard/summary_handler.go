package dashboard

import (
	"time"

	"satistakip-backend/internal/report"
	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type TargetBlock struct {
	MonthRevenue float64 `json:"month_revenue"` // ay başından bugüne toplam ciro
	TeamTarget   float64 `json:"team_target"`   // tüm temsilcilerin hedef toplamı
	Attainment   int     `json:"attainment"`    // yüzde
}

type SummaryResponse struct {
	From string `json:"from"`
	To   string `json:"to"`

	Revenue           float64 `json:"revenue"`
	RevenueDisplay    string  `json:"revenue_display"`
	ItemsSold         int     `json:"items_sold"`
	ItemsSoldDisplay  string  `json:"items_sold_display"`
	BillCount         int     `json:"bill_count"`
	BestExecutive     string  `json:"best_executive"` // "İsim (₺tutar)" veya "—"
	Incentives        float64 `json:"incentives"`
	IncentivesDisplay string  `json:"incentives_display"`
	PotentialProfit   float64 `json:"potential_profit"`

	Target TargetBlock `json:"target"`
}

// dateRange: from/to parametreleri; varsayılan ay başından bugüne
func dateRange(c *fiber.Ctx) (string, string) {
	now := time.Now()
	from := c.Query("from", state.StartOfMonthISO(now))
	to := c.Query("to", state.TodayISO())
	return from, to
}

// GET /api/dashboard/summary?from=&to=
func SummaryHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()
		from, to := dateRange(c)

		filtered := report.FilterSalesByDate(st.Sales, from, to)

		revenue := report.TotalRevenue(filtered)
		incentives := report.IncentivesTotal(filtered, st.Executives)
		itemsSold := report.TotalQty(filtered)

		best := "—"
		if name, val := report.BestExecutive(filtered, st.Executives); name != "" {
			best = name + " (" + report.FormatTRY(val) + ")"
		}

		// Hedef kartı: from hangi aya düşüyorsa o ayın başından to'ya kadar
		monthStart := state.StartOfMonthISO(time.Now())
		if t, err := time.Parse("2006-01-02", from); err == nil {
			monthStart = state.StartOfMonthISO(t)
		}
		monthSales := report.FilterSalesByDate(st.Sales, monthStart, to)
		monthRevenue := report.TotalRevenue(monthSales)
		teamTarget := report.TeamTarget(st.Executives)

		return c.JSON(SummaryResponse{
			From: from,
			To:   to,

			Revenue:           revenue,
			RevenueDisplay:    report.FormatTRY(revenue),
			ItemsSold:         itemsSold,
			ItemsSoldDisplay:  report.FormatNumber(float64(itemsSold)),
			BillCount:         report.DistinctBills(filtered),
			BestExecutive:     best,
			Incentives:        incentives,
			IncentivesDisplay: report.FormatTRY(incentives),
			PotentialProfit:   report.PotentialProfit(st.Inventory),

			Target: TargetBlock{
				MonthRevenue: monthRevenue,
				TeamTarget:   teamTarget,
				Attainment:   report.Attainment(monthRevenue, teamTarget),
			},
		})
	}
}

// GET /api/dashboard/sales-by-executive?from=&to=
func SalesByExecutiveHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()
		from, to := dateRange(c)

		filtered := report.FilterSalesByDate(st.Sales, from, to)
		return c.JSON(report.RevenueByExecutive(filtered, st.Executives))
	}
}

// GET /api/dashboard/sales-trend?from=&to=
// Günlük ciro serisi, tarihe göre artan
func SalesTrendHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()
		from, to := dateRange(c)

		filtered := report.FilterSalesByDate(st.Sales, from, to)
		return c.JSON(report.RevenueByDate(filtered))
	}
}

// GET /api/dashboard/product-contribution?from=&to=
func ProductContributionHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()
		from, to := dateRange(c)

		filtered := report.FilterSalesByDate(st.Sales, from, to)
		return c.JSON(report.RevenueByItem(filtered))
	}
}

// GET /api/dashboard/under-performers
// Ay başından bugüne hedefinin %70'inin altında kalan temsilciler
func UnderPerformersHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()

		now := time.Now()
		rows := report.UnderPerformers(st.Executives, st.Sales, state.StartOfMonthISO(now), state.TodayISO())
		return c.JSON(rows)
	}
}
