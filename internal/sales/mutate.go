package sales

import (
	"errors"

	"satistakip-backend/internal/state"
)

// ErrInsufficientStock: istenen adet eldeki stoktan fazla; satış reddedilir,
// hiçbir değişiklik yapılmaz.
var ErrInsufficientStock = errors.New("stok yetersiz")

// applyCreateSale: satış ekleme dönüşümü. Satışın SKU'su envanterde
// eşleşiyorsa stok kontrol edilir ve aynı commit içinde düşülür; satış
// kaydı ile stok düşümü hiçbir zaman ayrı ayrı gerçekleşmez. Eşleşmeyen
// SKU'da stok kontrolü yapılmaz (envanter dışı satır serbest).
func applyCreateSale(st state.AppState, sale state.Sale) (state.AppState, error) {
	if item := st.FindInventoryBySKU(sale.SKU); item != nil {
		if sale.Qty > item.Stock {
			return st, ErrInsufficientStock
		}
		item.Stock -= sale.Qty
	}

	// Yeni satış listenin başına eklenir (en son eklenen üstte)
	st.Sales = append([]state.Sale{sale}, st.Sales...)
	return st, nil
}

// applyUpdateSale: satış düzenleme. Stok yan etkisi yok; düzenleme ve
// silme stoğu geri yazmaz, yalnızca satış oluşturma stok düşer.
func applyUpdateSale(st state.AppState, id string, updated state.Sale) (state.AppState, error) {
	for i := range st.Sales {
		if st.Sales[i].ID == id {
			updated.ID = id
			st.Sales[i] = updated
			return st, nil
		}
	}
	return st, errors.New("satış bulunamadı")
}

func applyDeleteSale(st state.AppState, id string) (state.AppState, error) {
	kept := make([]state.Sale, 0, len(st.Sales))
	found := false
	for _, s := range st.Sales {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return st, errors.New("satış bulunamadı")
	}
	st.Sales = kept
	return st, nil
}
