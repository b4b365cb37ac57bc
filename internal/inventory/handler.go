package inventory

import (
	"net/url"
	"strings"

	"satistakip-backend/internal/report"
	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type ItemRequest struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Category     string  `json:"category"`
	CostPrice    float64 `json:"costPrice"`
	SellingPrice float64 `json:"sellingPrice"`
	Stock        int     `json:"stock"`
}

type ItemResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Category     string  `json:"category"`
	CostPrice    float64 `json:"costPrice"`
	SellingPrice float64 `json:"sellingPrice"`
	Stock        int     `json:"stock"`
	// Bu kalemin stoğu tamamen satılırsa beklenen kâr
	PotentialProfit float64 `json:"potentialProfit"`
}

func itemResponse(it state.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:              it.ID,
		Name:            it.Name,
		SKU:             it.SKU,
		Category:        it.Category,
		CostPrice:       it.CostPrice,
		SellingPrice:    it.SellingPrice,
		Stock:           it.Stock,
		PotentialProfit: report.PotentialProfit([]state.InventoryItem{it}),
	}
}

func validateRequest(body *ItemRequest) error {
	body.Name = strings.TrimSpace(body.Name)
	body.SKU = strings.TrimSpace(body.SKU)
	body.Category = strings.TrimSpace(body.Category)

	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Ürün adı boş olamaz")
	}
	if body.SKU == "" {
		return fiber.NewError(fiber.StatusBadRequest, "SKU boş olamaz")
	}
	if body.CostPrice < 0 || body.SellingPrice < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
	}
	if body.Stock < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Stok negatif olamaz")
	}
	return nil
}

// ----------------------------------------
// ENVANTER CRUD
// ----------------------------------------

// POST /api/inventory
func CreateItemHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if err := validateRequest(&body); err != nil {
			return err
		}

		item := state.InventoryItem{
			ID:           state.UID("I"),
			Name:         body.Name,
			SKU:          body.SKU,
			Category:     body.Category,
			CostPrice:    body.CostPrice,
			SellingPrice: body.SellingPrice,
			Stock:        body.Stock,
		}

		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			if st.FindInventoryBySKU(item.SKU) != nil {
				return st, fiber.NewError(fiber.StatusBadRequest, "Bu SKU zaten kayıtlı")
			}
			st.Inventory = append(st.Inventory, item)
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(itemResponse(item))
	}
}

// GET /api/inventory?category=&q=
func ListItemsHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()

		category := c.Query("category")
		query := strings.ToLower(strings.TrimSpace(c.Query("q")))

		res := make([]ItemResponse, 0, len(st.Inventory))
		for _, it := range st.Inventory {
			if category != "" && it.Category != category {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(it.Name+" "+it.SKU), query) {
				continue
			}
			res = append(res, itemResponse(it))
		}

		return c.JSON(res)
	}
}

// PUT /api/inventory/:id
func UpdateItemHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if err := validateRequest(&body); err != nil {
			return err
		}

		var updated state.InventoryItem
		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			item := st.FindInventoryByID(id)
			if item == nil {
				return st, fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}

			// SKU değişiyorsa başka kayıtla çakışmasın
			if body.SKU != item.SKU {
				if st.FindInventoryBySKU(body.SKU) != nil {
					return st, fiber.NewError(fiber.StatusBadRequest, "Bu SKU zaten kayıtlı")
				}
			}

			item.Name = body.Name
			item.SKU = body.SKU
			item.Category = body.Category
			item.CostPrice = body.CostPrice
			item.SellingPrice = body.SellingPrice
			item.Stock = body.Stock

			updated = *item
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.JSON(itemResponse(updated))
	}
}

// DELETE /api/inventory/:id
func DeleteItemHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			if st.FindInventoryByID(id) == nil {
				return st, fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}

			kept := make([]state.InventoryItem, 0, len(st.Inventory))
			for _, it := range st.Inventory {
				if it.ID != id {
					kept = append(kept, it)
				}
			}
			st.Inventory = kept
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/inventory/summary
// Stok ve portföy seviyesi potansiyel kâr özeti
func SummaryHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()

		totalStock := 0
		stockValue := 0.0
		for _, it := range st.Inventory {
			totalStock += it.Stock
			stockValue += it.CostPrice * float64(it.Stock)
		}

		return c.JSON(fiber.Map{
			"item_count":       len(st.Inventory),
			"total_stock":      totalStock,
			"stock_value":      stockValue,
			"potential_profit": report.PotentialProfit(st.Inventory),
		})
	}
}

// ----------------------------------------
// KATEGORİLER
// ----------------------------------------

type CategoryRequest struct {
	Name string `json:"name"`
}

// GET /api/categories
func ListCategoriesHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()
		return c.JSON(st.Categories)
	}
}

// POST /api/categories
func CreateCategoryHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		name := strings.TrimSpace(body.Name)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori adı boş olamaz")
		}

		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			for _, cat := range st.Categories {
				if strings.EqualFold(cat, name) {
					return st, fiber.NewError(fiber.StatusBadRequest, "Bu kategori zaten var")
				}
			}
			st.Categories = append(st.Categories, name)
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusCreated)
	}
}

// DELETE /api/categories/:name
// Kategori silinince ürünlerdeki kategori alanına dokunulmaz; ürün kategorisi
// serbest metin olarak kalır.
func DeleteCategoryHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil || strings.TrimSpace(name) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori adı geçersiz")
		}

		err = store.Commit(func(st state.AppState) (state.AppState, error) {
			kept := make([]string, 0, len(st.Categories))
			found := false
			for _, cat := range st.Categories {
				if cat == name {
					found = true
					continue
				}
				kept = append(kept, cat)
			}
			if !found {
				return st, fiber.NewError(fiber.StatusNotFound, "Kategori bulunamadı")
			}
			st.Categories = kept
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
