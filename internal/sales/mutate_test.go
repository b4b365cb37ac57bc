package sales

import (
	"testing"

	"satistakip-backend/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() state.AppState {
	return state.AppState{
		Branches:   []state.Branch{{ID: "b1", Name: "Merkez", City: "İstanbul"}},
		Executives: []state.Executive{{ID: "E001", Name: "Mehmet", BranchID: "b1"}},
		Sales:      []state.Sale{},
		Inventory: []state.InventoryItem{
			{ID: "i1", Name: "Termal Yazıcı", SKU: "TP-200", CostPrice: 12000, SellingPrice: 15000, Stock: 10},
		},
		Categories: []string{},
	}
}

func TestApplyCreateSale_StokDusulur(t *testing.T) {
	st := testState()

	next, err := applyCreateSale(st, state.Sale{ID: "s1", BillNo: "B1", SKU: "TP-200", Qty: 3, UnitPrice: 15000})
	require.NoError(t, err)

	assert.Len(t, next.Sales, 1)
	assert.Equal(t, 7, next.FindInventoryBySKU("TP-200").Stock, "stok tam bir kez Q kadar düşmeli")
}

func TestApplyCreateSale_StokYetersizRed(t *testing.T) {
	st := testState()

	next, err := applyCreateSale(st, state.Sale{ID: "s1", BillNo: "B1", SKU: "TP-200", Qty: 11})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Hiçbir değişiklik olmamalı
	assert.Empty(t, next.Sales)
	assert.Equal(t, 10, next.FindInventoryBySKU("TP-200").Stock)
}

func TestApplyCreateSale_EnvanterDisiSKU(t *testing.T) {
	st := testState()

	next, err := applyCreateSale(st, state.Sale{ID: "s1", BillNo: "B1", SKU: "YOK-123", Qty: 99})
	require.NoError(t, err, "envanterde olmayan SKU stok kontrolüne takılmamalı")
	assert.Len(t, next.Sales, 1)
}

func TestApplyCreateSale_YeniSatisBastaEklenir(t *testing.T) {
	st := testState()
	st.Sales = []state.Sale{{ID: "eski"}}

	next, err := applyCreateSale(st, state.Sale{ID: "yeni", SKU: "YOK"})
	require.NoError(t, err)

	assert.Equal(t, "yeni", next.Sales[0].ID)
	assert.Equal(t, "eski", next.Sales[1].ID)
}

func TestApplyUpdateSale_StokYanEtkisiYok(t *testing.T) {
	st := testState()
	st.Sales = []state.Sale{{ID: "s1", BillNo: "B1", SKU: "TP-200", Qty: 1}}

	next, err := applyUpdateSale(st, "s1", state.Sale{BillNo: "B1-düzeltme", SKU: "TP-200", Qty: 5})
	require.NoError(t, err)

	assert.Equal(t, "B1-düzeltme", next.Sales[0].BillNo)
	assert.Equal(t, "s1", next.Sales[0].ID, "id düzenlemede korunur")
	assert.Equal(t, 10, next.FindInventoryBySKU("TP-200").Stock, "düzenleme stoğa dokunmaz")
}

func TestApplyUpdateSale_Bulunamadi(t *testing.T) {
	st := testState()

	_, err := applyUpdateSale(st, "yok", state.Sale{})
	assert.Error(t, err)
}

func TestApplyDeleteSale(t *testing.T) {
	st := testState()
	st.Sales = []state.Sale{{ID: "s1", SKU: "TP-200", Qty: 3}, {ID: "s2"}}

	next, err := applyDeleteSale(st, "s1")
	require.NoError(t, err)

	assert.Len(t, next.Sales, 1)
	assert.Equal(t, "s2", next.Sales[0].ID)
	assert.Equal(t, 10, next.FindInventoryBySKU("TP-200").Stock, "silme stoğu geri yazmaz")

	_, err = applyDeleteSale(next, "yok")
	assert.Error(t, err)
}
