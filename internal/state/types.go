package state

// Business: işletme profili (tek kayıt, ayarlar sayfasından düzenlenir)
type Business struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Logo    string `json:"logo,omitempty"` // data URI olarak saklanır (ayrı blob storage yok)
}

type Branch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type Executive struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone,omitempty"`
	Email         string  `json:"email,omitempty"`
	Territory     string  `json:"territory,omitempty"` // sorumlu olduğu bölge
	BranchID      string  `json:"branchId"`
	JoinedOn      string  `json:"joinedOn"` // YYYY-MM-DD
	TargetMonthly float64 `json:"targetMonthly"`
	IncentivePct  float64 `json:"incentivePct,omitempty"` // prim oranı (%)
}

type Sale struct {
	ID        string  `json:"id"`
	BillNo    string  `json:"billNo"`
	Date      string  `json:"date"` // YYYY-MM-DD (ISO sıralama = kronolojik sıralama)
	ExecID    string  `json:"execId"`
	BranchID  string  `json:"branchId"`
	Item      string  `json:"item"`
	SKU       string  `json:"sku"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
}

type InventoryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Category     string  `json:"category,omitempty"`
	CostPrice    float64 `json:"costPrice"`
	SellingPrice float64 `json:"sellingPrice"`
	Stock        int     `json:"stock"`
}

// AppState: tüm koleksiyonları içeren snapshot. Kısmi güncelleme yok,
// her mutasyon snapshot'ın tamamını değiştirir.
type AppState struct {
	Business   Business        `json:"business"`
	Branches   []Branch        `json:"branches"`
	Executives []Executive     `json:"executives"`
	Sales      []Sale          `json:"sales"`
	Inventory  []InventoryItem `json:"inventory"`
	Categories []string        `json:"categories"`
}

// Normalize: eski snapshot'larda bulunmayan alanları varsayılana çeker.
// Örn. "inventory" alanı olmayan eski bir kayıt boş listeyle devam eder.
// Bu bir şema göçü emniyeti, validasyon değil.
func (st *AppState) Normalize() {
	if st.Branches == nil {
		st.Branches = []Branch{}
	}
	if st.Executives == nil {
		st.Executives = []Executive{}
	}
	if st.Sales == nil {
		st.Sales = []Sale{}
	}
	if st.Inventory == nil {
		st.Inventory = []InventoryItem{}
	}
	if st.Categories == nil {
		st.Categories = []string{}
	}
}

// Clone: snapshot'ın derin kopyası. Store dışına her zaman kopya verilir,
// slice paylaşımı üzerinden gizli mutasyon olmasın diye.
func (st AppState) Clone() AppState {
	out := st
	out.Branches = append([]Branch{}, st.Branches...)
	out.Executives = append([]Executive{}, st.Executives...)
	out.Sales = append([]Sale{}, st.Sales...)
	out.Inventory = append([]InventoryItem{}, st.Inventory...)
	out.Categories = append([]string{}, st.Categories...)
	return out
}

// FindBranch: id ile şube arar, bulunamazsa nil
func (st *AppState) FindBranch(id string) *Branch {
	for i := range st.Branches {
		if st.Branches[i].ID == id {
			return &st.Branches[i]
		}
	}
	return nil
}

func (st *AppState) FindExecutive(id string) *Executive {
	for i := range st.Executives {
		if st.Executives[i].ID == id {
			return &st.Executives[i]
		}
	}
	return nil
}

// FindInventoryBySKU: satış kaydederken fiyat/stok bu SKU üzerinden bulunur
func (st *AppState) FindInventoryBySKU(sku string) *InventoryItem {
	for i := range st.Inventory {
		if st.Inventory[i].SKU == sku {
			return &st.Inventory[i]
		}
	}
	return nil
}

func (st *AppState) FindInventoryByID(id string) *InventoryItem {
	for i := range st.Inventory {
		if st.Inventory[i].ID == id {
			return &st.Inventory[i]
		}
	}
	return nil
}
