// Package report: snapshot üzerinde çalışan saf hesap fonksiyonları.
// Aynı snapshot + aynı parametreler = aynı sonuç; I/O yok, gizli durum yok.
package report

import (
	"math"
	"sort"

	"satistakip-backend/internal/state"
)

// SaleAmount: satış tutarı = adet × birim fiyat
func SaleAmount(s state.Sale) float64 {
	return float64(s.Qty) * s.UnitPrice
}

// FilterSalesByDate: [from, to] kapalı aralığında tarih filtresi. Boş sınır
// o ucu açık bırakır. Karşılaştırma string üzerinden yapılır: ISO
// YYYY-MM-DD'de sözlük sırası kronolojik sıraya eşittir; tarih formatı
// değişirse bu fonksiyon da değişmeli.
func FilterSalesByDate(sales []state.Sale, from, to string) []state.Sale {
	out := make([]state.Sale, 0, len(sales))
	for _, s := range sales {
		if from != "" && s.Date < from {
			continue
		}
		if to != "" && s.Date > to {
			continue
		}
		out = append(out, s)
	}
	return out
}

// incentiveRates: temsilci id -> prim oranı. Kayıt yoksa veya oran
// girilmemişse 0 kabul edilir.
func incentiveRates(execs []state.Executive) map[string]float64 {
	rates := make(map[string]float64, len(execs))
	for _, e := range execs {
		rates[e.ID] = e.IncentivePct
	}
	return rates
}

// IncentivesTotal: verilen satışlar için toplam prim tutarı
func IncentivesTotal(sales []state.Sale, execs []state.Executive) float64 {
	rates := incentiveRates(execs)
	total := 0.0
	for _, s := range sales {
		total += SaleAmount(s) * rates[s.ExecID] / 100
	}
	return total
}

// ExecRevenue: bir temsilcinin [from, to] aralığındaki cirosu
func ExecRevenue(sales []state.Sale, execID, from, to string) float64 {
	total := 0.0
	for _, s := range FilterSalesByDate(sales, from, to) {
		if s.ExecID == execID {
			total += SaleAmount(s)
		}
	}
	return total
}

// Attainment: hedefe ulaşma yüzdesi, tam sayıya yuvarlanır.
// Hedef 0 veya tanımsızsa sonuç her zaman 0.
func Attainment(revenue, target float64) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(revenue / target * 100))
}

// UnderPerformer: ay başından bugüne hedefinin %70'inin altında kalan temsilci
type UnderPerformer struct {
	ExecID     string  `json:"exec_id"`
	Name       string  `json:"name"`
	Attainment int     `json:"attainment"`
	Target     float64 `json:"target"`
}

// UnderPerformers: hedefi tanımlı olup [from, to] aralığında %70'in altında
// kalan temsilciler
func UnderPerformers(execs []state.Executive, sales []state.Sale, from, to string) []UnderPerformer {
	out := []UnderPerformer{}
	for _, e := range execs {
		if e.TargetMonthly <= 0 {
			continue
		}
		pct := Attainment(ExecRevenue(sales, e.ID, from, to), e.TargetMonthly)
		if pct < 70 {
			out = append(out, UnderPerformer{ExecID: e.ID, Name: e.Name, Attainment: pct, Target: e.TargetMonthly})
		}
	}
	return out
}

// PotentialProfit: stoğun tamamı satılırsa beklenen kâr. Negatif marj
// (alış > satış) 0 sayılır.
func PotentialProfit(items []state.InventoryItem) float64 {
	total := 0.0
	for _, it := range items {
		margin := it.SellingPrice - it.CostPrice
		if margin < 0 {
			margin = 0
		}
		total += margin * float64(it.Stock)
	}
	return total
}

// NamedValue: grafik beslemeleri için isim + değer çifti
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RevenueByExecutive: ciro dağılımı, temsilci adına göre. Bilinmeyen
// temsilci id'si olduğu gibi gösterilir.
func RevenueByExecutive(sales []state.Sale, execs []state.Executive) []NamedValue {
	names := make(map[string]string, len(execs))
	for _, e := range execs {
		names[e.ID] = e.Name
	}

	totals := map[string]float64{}
	order := []string{}
	for _, s := range sales {
		name := names[s.ExecID]
		if name == "" {
			name = s.ExecID
		}
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += SaleAmount(s)
	}

	out := make([]NamedValue, 0, len(order))
	for _, name := range order {
		out = append(out, NamedValue{Name: name, Value: totals[name]})
	}
	return out
}

// RevenueByDate: günlük ciro, tarihe göre artan sıralı
func RevenueByDate(sales []state.Sale) []NamedValue {
	totals := map[string]float64{}
	for _, s := range sales {
		totals[s.Date] += SaleAmount(s)
	}

	dates := make([]string, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]NamedValue, 0, len(dates))
	for _, d := range dates {
		out = append(out, NamedValue{Name: d, Value: totals[d]})
	}
	return out
}

// RevenueByItem: ürün bazında ciro dağılımı
func RevenueByItem(sales []state.Sale) []NamedValue {
	totals := map[string]float64{}
	order := []string{}
	for _, s := range sales {
		if _, ok := totals[s.Item]; !ok {
			order = append(order, s.Item)
		}
		totals[s.Item] += SaleAmount(s)
	}

	out := make([]NamedValue, 0, len(order))
	for _, name := range order {
		out = append(out, NamedValue{Name: name, Value: totals[name]})
	}
	return out
}

// BestExecutive: aralıktaki en yüksek cirolu temsilci. Satış yoksa ("", 0);
// en iyi satışın temsilci kaydı silinmişse isim boş döner, gösterim katmanı
// yer tutucuya düşer.
func BestExecutive(sales []state.Sale, execs []state.Executive) (string, float64) {
	totals := map[string]float64{}
	for _, s := range sales {
		totals[s.ExecID] += SaleAmount(s)
	}

	bestID := ""
	bestVal := math.Inf(-1)
	for id, v := range totals {
		if v > bestVal || (v == bestVal && id < bestID) {
			bestID, bestVal = id, v
		}
	}
	if bestID == "" {
		return "", 0
	}

	for _, e := range execs {
		if e.ID == bestID {
			return e.Name, bestVal
		}
	}
	return "", bestVal
}

// TotalQty: satılan toplam ürün adedi
func TotalQty(sales []state.Sale) int {
	total := 0
	for _, s := range sales {
		total += s.Qty
	}
	return total
}

// DistinctBills: aralıktaki fiş/fatura sayısı (billNo bazında tekil)
func DistinctBills(sales []state.Sale) int {
	seen := map[string]struct{}{}
	for _, s := range sales {
		seen[s.BillNo] = struct{}{}
	}
	return len(seen)
}

// TotalRevenue: satışların toplam tutarı
func TotalRevenue(sales []state.Sale) float64 {
	total := 0.0
	for _, s := range sales {
		total += SaleAmount(s)
	}
	return total
}

// TeamTarget: tüm temsilcilerin aylık hedef toplamı
func TeamTarget(execs []state.Executive) float64 {
	total := 0.0
	for _, e := range execs {
		total += e.TargetMonthly
	}
	return total
}
