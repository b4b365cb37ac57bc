package state

// StorageKey: snapshot'ın saklandığı anahtar. Eski sürümlerle uyumluluk için
// değiştirilmemeli, kayıtlı veri bu anahtarın altında duruyor.
const StorageKey = "se-tracker-v1"

var DefaultCategories = []string{"Elektronik", "Ev", "Aksesuar", "Aydınlatma", "Mobilya"}

// DemoState: ilk açılışta veya bozuk/eksik kayıtta kullanılan örnek veri seti
func DemoState() AppState {
	today := TodayISO()
	return AppState{
		Business: Business{Name: "", Address: ""},
		Branches: []Branch{
			{ID: "b_kad", Name: "Kadıköy Merkez", City: "İstanbul"},
			{ID: "b_ank", Name: "Ankara Şube", City: "Ankara"},
		},
		Executives: []Executive{
			{ID: "E001", Name: "Mehmet Yılmaz", Phone: "+90 532 xxx xx 12", Email: "mehmet@example.com", Territory: "Kadıköy Bölgesi", BranchID: "b_kad", JoinedOn: "2025-06-01", TargetMonthly: 800000, IncentivePct: 2.5},
			{ID: "E002", Name: "Ayşe Demir", Phone: "+90 533 xxx xx 45", Email: "ayse@example.com", Territory: "Ankara Merkez", BranchID: "b_ank", JoinedOn: "2025-05-15", TargetMonthly: 700000, IncentivePct: 2},
		},
		Sales: []Sale{
			{ID: UID("S"), BillNo: "B1001", Date: today, ExecID: "E001", BranchID: "b_kad", Item: "Termal Yazıcı", SKU: "TP-200", Qty: 3, UnitPrice: 15000},
			{ID: UID("S"), BillNo: "B1002", Date: today, ExecID: "E002", BranchID: "b_ank", Item: "Etiket Rulosu", SKU: "LR-58", Qty: 20, UnitPrice: 120},
			{ID: UID("S"), BillNo: "B1003", Date: today, ExecID: "E001", BranchID: "b_kad", Item: "Barkod Okuyucu", SKU: "BS-900", Qty: 2, UnitPrice: 4500},
		},
		Inventory: []InventoryItem{
			{ID: UID("I"), Name: "Termal Yazıcı", SKU: "TP-200", Category: "Elektronik", CostPrice: 12000, SellingPrice: 15000, Stock: 10},
			{ID: UID("I"), Name: "Etiket Rulosu", SKU: "LR-58", Category: "Aksesuar", CostPrice: 80, SellingPrice: 120, Stock: 200},
			{ID: UID("I"), Name: "Barkod Okuyucu", SKU: "BS-900", Category: "Elektronik", CostPrice: 3500, SellingPrice: 4500, Stock: 25},
		},
		Categories: append([]string{}, DefaultCategories...),
	}
}
