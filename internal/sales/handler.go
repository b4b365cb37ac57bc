package sales

import (
	"errors"
	"strings"
	"time"

	"satistakip-backend/internal/report"
	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type SaleRequest struct {
	BillNo    string  `json:"billNo"`
	Date      string  `json:"date"`
	ExecID    string  `json:"execId"`
	BranchID  string  `json:"branchId"`
	Item      string  `json:"item"`
	SKU       string  `json:"sku"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
}

type SaleResponse struct {
	ID         string  `json:"id"`
	BillNo     string  `json:"billNo"`
	Date       string  `json:"date"`
	ExecID     string  `json:"execId"`
	ExecName   string  `json:"execName"`
	BranchID   string  `json:"branchId"`
	BranchName string  `json:"branchName"`
	Item       string  `json:"item"`
	SKU        string  `json:"sku"`
	Qty        int     `json:"qty"`
	UnitPrice  float64 `json:"unitPrice"`
	Amount     float64 `json:"amount"`
}

func saleResponse(st *state.AppState, s state.Sale) SaleResponse {
	execName := s.ExecID
	if e := st.FindExecutive(s.ExecID); e != nil {
		execName = e.Name
	}
	branchName := s.BranchID
	if b := st.FindBranch(s.BranchID); b != nil {
		branchName = b.Name
	}

	return SaleResponse{
		ID:         s.ID,
		BillNo:     s.BillNo,
		Date:       s.Date,
		ExecID:     s.ExecID,
		ExecName:   execName,
		BranchID:   s.BranchID,
		BranchName: branchName,
		Item:       s.Item,
		SKU:        s.SKU,
		Qty:        s.Qty,
		UnitPrice:  s.UnitPrice,
		Amount:     report.SaleAmount(s),
	}
}

func validateRequest(body *SaleRequest) error {
	body.BillNo = strings.TrimSpace(body.BillNo)
	body.Item = strings.TrimSpace(body.Item)
	body.SKU = strings.TrimSpace(body.SKU)

	if body.BillNo == "" || body.Item == "" || body.SKU == "" || body.ExecID == "" || body.BranchID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Zorunlu alanlar eksik")
	}
	if body.Date == "" {
		body.Date = state.TodayISO()
	} else if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		// Tarih filtreleri string karşılaştırmasına dayanır, ISO dışı
		// format sessizce filtre dışı kalırdı
		return fiber.NewError(fiber.StatusBadRequest, "Satış tarihi geçersiz (YYYY-MM-DD)")
	}
	if body.Qty < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Adet en az 1 olmalı")
	}
	if body.UnitPrice < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Birim fiyat negatif olamaz")
	}
	return nil
}

// filterSales: liste ve export'un ortak filtre mantığı.
// Şube, temsilci, kategori (SKU -> envanter üzerinden), tarih aralığı ve
// serbest metin araması (fiş no / ürün / SKU / temsilci adı).
func filterSales(st *state.AppState, branchID, execID, category, from, to, query string) []state.Sale {
	execNames := make(map[string]string, len(st.Executives))
	for _, e := range st.Executives {
		execNames[e.ID] = strings.ToLower(e.Name)
	}
	categories := make(map[string]string, len(st.Inventory))
	for _, it := range st.Inventory {
		categories[it.SKU] = it.Category
	}

	query = strings.ToLower(strings.TrimSpace(query))

	out := []state.Sale{}
	for _, s := range report.FilterSalesByDate(st.Sales, from, to) {
		if branchID != "" && s.BranchID != branchID {
			continue
		}
		if execID != "" && s.ExecID != execID {
			continue
		}
		if category != "" && categories[s.SKU] != category {
			continue
		}
		if query != "" {
			hay := strings.ToLower(s.BillNo + " " + s.Item + " " + s.SKU + " " + execNames[s.ExecID])
			if !strings.Contains(hay, query) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// POST /api/sales
// SKU envanterde eşleşiyorsa stok aynı commit içinde düşülür. Stok yetersizse
// satış reddedilir ve hiçbir değişiklik olmaz.
func CreateSaleHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if err := validateRequest(&body); err != nil {
			return err
		}

		sale := state.Sale{
			ID:        state.UID("S"),
			BillNo:    body.BillNo,
			Date:      body.Date,
			ExecID:    body.ExecID,
			BranchID:  body.BranchID,
			Item:      body.Item,
			SKU:       body.SKU,
			Qty:       body.Qty,
			UnitPrice: body.UnitPrice,
		}

		var snapshot state.AppState
		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			next, err := applyCreateSale(st, sale)
			if err != nil {
				return st, err
			}
			snapshot = next
			return next, nil
		})
		if errors.Is(err, ErrInsufficientStock) {
			return fiber.NewError(fiber.StatusBadRequest, "Stok yetersiz")
		}
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(saleResponse(&snapshot, sale))
	}
}

// GET /api/sales?branch_id=&exec_id=&category=&from=&to=&q=
func ListSalesHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()

		rows := filterSales(&st,
			c.Query("branch_id"),
			c.Query("exec_id"),
			c.Query("category"),
			c.Query("from"),
			c.Query("to"),
			c.Query("q"),
		)

		res := make([]SaleResponse, 0, len(rows))
		for _, s := range rows {
			res = append(res, saleResponse(&st, s))
		}

		return c.JSON(res)
	}
}

// PUT /api/sales/:id
// Düzenleme stok yan etkisi yapmaz.
func UpdateSaleHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body SaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if err := validateRequest(&body); err != nil {
			return err
		}

		updated := state.Sale{
			BillNo:    body.BillNo,
			Date:      body.Date,
			ExecID:    body.ExecID,
			BranchID:  body.BranchID,
			Item:      body.Item,
			SKU:       body.SKU,
			Qty:       body.Qty,
			UnitPrice: body.UnitPrice,
		}

		var snapshot state.AppState
		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			next, err := applyUpdateSale(st, id, updated)
			if err != nil {
				return st, fiber.NewError(fiber.StatusNotFound, "Satış bulunamadı")
			}
			snapshot = next
			return next, nil
		})
		if err != nil {
			return err
		}

		updated.ID = id
		return c.JSON(saleResponse(&snapshot, updated))
	}
}

// DELETE /api/sales/:id
// Silme stoğu geri yazmaz.
func DeleteSaleHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			next, err := applyDeleteSale(st, id)
			if err != nil {
				return st, fiber.NewError(fiber.StatusNotFound, "Satış bulunamadı")
			}
			return next, nil
		})
		if err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
