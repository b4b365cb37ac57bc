package admin

import (
	"strings"

	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type CreateBranchRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type UpdateBranchRequest struct {
	Name *string `json:"name"`
	City *string `json:"city"`
}

func branchResponse(b state.Branch) BranchResponse {
	return BranchResponse{ID: b.ID, Name: b.Name, City: b.City}
}

// ----------------------------------------
// ŞUBE CRUD
// ----------------------------------------

// POST /api/branches
func CreateBranchHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.City = strings.TrimSpace(body.City)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şube adı boş olamaz")
		}
		if body.City == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şehir boş olamaz")
		}

		branch := state.Branch{
			ID:   uuid.NewString(),
			Name: body.Name,
			City: body.City,
		}

		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			st.Branches = append(st.Branches, branch)
			return st, nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şube oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(branchResponse(branch))
	}
}

// GET /api/branches
func ListBranchesHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()

		res := make([]BranchResponse, 0, len(st.Branches))
		for _, b := range st.Branches {
			res = append(res, branchResponse(b))
		}

		return c.JSON(res)
	}
}

// PUT /api/branches/:id
func UpdateBranchHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		var updated state.Branch
		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			branch := st.FindBranch(id)
			if branch == nil {
				return st, fiber.NewError(fiber.StatusNotFound, "Şube bulunamadı")
			}

			if body.Name != nil {
				name := strings.TrimSpace(*body.Name)
				if name == "" {
					return st, fiber.NewError(fiber.StatusBadRequest, "Şube adı boş olamaz")
				}
				branch.Name = name
			}
			if body.City != nil {
				city := strings.TrimSpace(*body.City)
				if city == "" {
					return st, fiber.NewError(fiber.StatusBadRequest, "Şehir boş olamaz")
				}
				branch.City = city
			}

			updated = *branch
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.JSON(branchResponse(updated))
	}
}

// DELETE /api/branches/:id
// Temsilci veya satış kaydı tarafından kullanılan şube silinemez.
func DeleteBranchHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			if st.FindBranch(id) == nil {
				return st, fiber.NewError(fiber.StatusNotFound, "Şube bulunamadı")
			}

			for _, e := range st.Executives {
				if e.BranchID == id {
					return st, fiber.NewError(fiber.StatusBadRequest, "Şube silinemez: temsilci kayıtlarında kullanılıyor")
				}
			}
			for _, s := range st.Sales {
				if s.BranchID == id {
					return st, fiber.NewError(fiber.StatusBadRequest, "Şube silinemez: satış kayıtlarında kullanılıyor")
				}
			}

			kept := make([]state.Branch, 0, len(st.Branches))
			for _, b := range st.Branches {
				if b.ID != id {
					kept = append(kept, b)
				}
			}
			st.Branches = kept
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
