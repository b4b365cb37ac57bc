package report

import (
	"testing"

	"satistakip-backend/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestSaleAmount(t *testing.T) {
	assert.Equal(t, 45000.0, SaleAmount(state.Sale{Qty: 3, UnitPrice: 15000}))
	assert.Equal(t, 0.0, SaleAmount(state.Sale{Qty: 0, UnitPrice: 100}))
}

func TestIncentivesTotal(t *testing.T) {
	execs := []state.Executive{
		{ID: "E1", IncentivePct: 10},
		{ID: "E2", IncentivePct: 5},
	}
	sales := []state.Sale{
		{ExecID: "E1", Qty: 2, UnitPrice: 100},
		{ExecID: "E2", Qty: 1, UnitPrice: 200},
	}

	// 2×100×%10 + 1×200×%5 = 20 + 10 = 30
	assert.Equal(t, 30.0, IncentivesTotal(sales, execs))
}

func TestIncentivesTotal_BilinmeyenTemsilciSifirSayilir(t *testing.T) {
	sales := []state.Sale{
		{ExecID: "yok", Qty: 5, UnitPrice: 1000},
	}
	assert.Equal(t, 0.0, IncentivesTotal(sales, nil))

	// Oranı girilmemiş temsilci de 0 sayılır
	execs := []state.Executive{{ID: "E1"}}
	sales[0].ExecID = "E1"
	assert.Equal(t, 0.0, IncentivesTotal(sales, execs))
}

func TestAttainment(t *testing.T) {
	tests := []struct {
		name    string
		revenue float64
		target  float64
		want    int
	}{
		{"hedef sıfırsa her zaman 0", 500000, 0, 0},
		{"hedef negatifse 0", 100, -1, 0},
		{"tam hedef", 800000, 800000, 100},
		{"yarım hedef", 400000, 800000, 50},
		{"yuvarlama", 333, 1000, 33},
		{"yukarı yuvarlama", 335, 1000, 34},
		{"hedef aşımı 100'ü geçebilir", 1200000, 800000, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Attainment(tt.revenue, tt.target))
		})
	}
}

func TestUnderPerformers(t *testing.T) {
	execs := []state.Executive{
		{ID: "E1", Name: "İyi Durumda", TargetMonthly: 1000},
		{ID: "E2", Name: "Dikkat Gerekiyor", TargetMonthly: 1000},
		{ID: "E3", Name: "Hedefsiz", TargetMonthly: 0},
	}
	sales := []state.Sale{
		{ExecID: "E1", Date: "2026-08-10", Qty: 1, UnitPrice: 700}, // %70 sınırda, listede değil
		{ExecID: "E2", Date: "2026-08-10", Qty: 1, UnitPrice: 650}, // %65
	}

	rows := UnderPerformers(execs, sales, "2026-08-01", "2026-08-31")

	assert.Len(t, rows, 1)
	assert.Equal(t, "E2", rows[0].ExecID)
	assert.Equal(t, 65, rows[0].Attainment)
}

func TestPotentialProfit(t *testing.T) {
	items := []state.InventoryItem{
		{CostPrice: 12000, SellingPrice: 15000, Stock: 10}, // 30000
		{CostPrice: 80, SellingPrice: 120, Stock: 200},     // 8000
		{CostPrice: 500, SellingPrice: 300, Stock: 50},     // negatif marj -> 0
	}

	assert.Equal(t, 38000.0, PotentialProfit(items))
	assert.Equal(t, 0.0, PotentialProfit(nil))
}

func TestFilterSalesByDate(t *testing.T) {
	sales := []state.Sale{
		{ID: "a", Date: "2026-07-31"},
		{ID: "b", Date: "2026-08-01"},
		{ID: "c", Date: "2026-08-15"},
		{ID: "d", Date: "2026-08-31"},
		{ID: "e", Date: "2026-09-01"},
	}

	got := FilterSalesByDate(sales, "2026-08-01", "2026-08-31")
	ids := []string{}
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"b", "c", "d"}, ids, "aralık iki uçta da kapalı olmalı")

	// Boş sınırlar o ucu açık bırakır
	assert.Len(t, FilterSalesByDate(sales, "", "2026-08-01"), 2)
	assert.Len(t, FilterSalesByDate(sales, "2026-08-15", ""), 3)
	assert.Len(t, FilterSalesByDate(sales, "", ""), 5)
}

func TestRevenueByDate_TariheGoreSirali(t *testing.T) {
	sales := []state.Sale{
		{Date: "2026-08-03", Qty: 1, UnitPrice: 300},
		{Date: "2026-08-01", Qty: 1, UnitPrice: 100},
		{Date: "2026-08-03", Qty: 1, UnitPrice: 50},
		{Date: "2026-08-02", Qty: 1, UnitPrice: 200},
	}

	got := RevenueByDate(sales)

	assert.Equal(t, []NamedValue{
		{Name: "2026-08-01", Value: 100},
		{Name: "2026-08-02", Value: 200},
		{Name: "2026-08-03", Value: 350},
	}, got)
}

func TestRevenueByExecutive(t *testing.T) {
	execs := []state.Executive{{ID: "E1", Name: "Mehmet"}}
	sales := []state.Sale{
		{ExecID: "E1", Qty: 2, UnitPrice: 100},
		{ExecID: "E9", Qty: 1, UnitPrice: 50}, // kayıtsız temsilci id ile görünür
		{ExecID: "E1", Qty: 1, UnitPrice: 100},
	}

	got := RevenueByExecutive(sales, execs)

	assert.Equal(t, []NamedValue{
		{Name: "Mehmet", Value: 300},
		{Name: "E9", Value: 50},
	}, got)
}

func TestBestExecutive(t *testing.T) {
	execs := []state.Executive{
		{ID: "E1", Name: "Mehmet"},
		{ID: "E2", Name: "Ayşe"},
	}
	sales := []state.Sale{
		{ExecID: "E1", Qty: 1, UnitPrice: 100},
		{ExecID: "E2", Qty: 1, UnitPrice: 500},
	}

	name, val := BestExecutive(sales, execs)
	assert.Equal(t, "Ayşe", name)
	assert.Equal(t, 500.0, val)

	name, val = BestExecutive(nil, execs)
	assert.Equal(t, "", name)
	assert.Equal(t, 0.0, val)
}

func TestBestExecutive_KaydiSilinmisTemsilci(t *testing.T) {
	sales := []state.Sale{{ExecID: "E9", Qty: 1, UnitPrice: 500}}

	name, val := BestExecutive(sales, nil)
	assert.Equal(t, "", name, "çözülemeyen id isim olarak gösterilmez")
	assert.Equal(t, 500.0, val)
}

func TestDistinctBills(t *testing.T) {
	sales := []state.Sale{
		{BillNo: "B1"},
		{BillNo: "B1"},
		{BillNo: "B2"},
	}
	assert.Equal(t, 2, DistinctBills(sales))
}

func TestTotalQtyVeTotalRevenue(t *testing.T) {
	sales := []state.Sale{
		{Qty: 3, UnitPrice: 10},
		{Qty: 2, UnitPrice: 5},
	}
	assert.Equal(t, 5, TotalQty(sales))
	assert.Equal(t, 40.0, TotalRevenue(sales))
}
