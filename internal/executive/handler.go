package executive

import (
	"math"
	"strings"
	"time"

	"satistakip-backend/internal/report"
	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type ExecutiveRequest struct {
	ID            string  `json:"id"` // boşsa otomatik üretilir (E001, E002, ...)
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Territory     string  `json:"territory"`
	BranchID      string  `json:"branchId"`
	JoinedOn      string  `json:"joinedOn"`
	TargetMonthly float64 `json:"targetMonthly"`
	IncentivePct  float64 `json:"incentivePct"`
}

type ExecutiveResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Territory     string  `json:"territory"`
	BranchID      string  `json:"branchId"`
	BranchName    string  `json:"branchName"`
	JoinedOn      string  `json:"joinedOn"`
	TargetMonthly float64 `json:"targetMonthly"`
	IncentivePct  float64 `json:"incentivePct"`

	// Ay başından bugüne performans
	MonthRevenue   float64 `json:"monthRevenue"`
	Attainment     int     `json:"attainment"`
	MonthIncentive float64 `json:"monthIncentive"`
}

func execResponse(st *state.AppState, e state.Executive, monthStart, monthEnd string) ExecutiveResponse {
	branchName := e.BranchID
	if b := st.FindBranch(e.BranchID); b != nil {
		branchName = b.Name
	}

	revenue := report.ExecRevenue(st.Sales, e.ID, monthStart, monthEnd)

	return ExecutiveResponse{
		ID:            e.ID,
		Name:          e.Name,
		Phone:         e.Phone,
		Email:         e.Email,
		Territory:     e.Territory,
		BranchID:      e.BranchID,
		BranchName:    branchName,
		JoinedOn:      e.JoinedOn,
		TargetMonthly: e.TargetMonthly,
		IncentivePct:  e.IncentivePct,

		MonthRevenue:   revenue,
		Attainment:     report.Attainment(revenue, e.TargetMonthly),
		MonthIncentive: math.Round(revenue * e.IncentivePct / 100),
	}
}

func validateRequest(body *ExecutiveRequest) error {
	body.ID = strings.TrimSpace(body.ID)
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(strings.ToLower(body.Email))

	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Temsilci adı boş olamaz")
	}
	if body.BranchID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Şube seçimi zorunlu")
	}
	if body.TargetMonthly < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Aylık hedef negatif olamaz")
	}
	if body.IncentivePct < 0 || body.IncentivePct > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "Prim oranı 0-100 arasında olmalı")
	}
	if body.JoinedOn != "" {
		if _, err := time.Parse("2006-01-02", body.JoinedOn); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Başlama tarihi geçersiz (YYYY-MM-DD)")
		}
	}
	return nil
}

// POST /api/executives
func CreateExecutiveHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ExecutiveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if err := validateRequest(&body); err != nil {
			return err
		}
		if body.JoinedOn == "" {
			body.JoinedOn = state.TodayISO()
		}

		var created state.Executive
		var snapshot state.AppState
		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			if st.FindBranch(body.BranchID) == nil {
				return st, fiber.NewError(fiber.StatusBadRequest, "Seçilen şube bulunamadı")
			}

			id := body.ID
			if id == "" {
				id = state.GenExecID(st.Executives)
			} else if st.FindExecutive(id) != nil {
				return st, fiber.NewError(fiber.StatusBadRequest, "Bu temsilci ID'si zaten kayıtlı")
			}

			created = state.Executive{
				ID:            id,
				Name:          body.Name,
				Phone:         body.Phone,
				Email:         body.Email,
				Territory:     body.Territory,
				BranchID:      body.BranchID,
				JoinedOn:      body.JoinedOn,
				TargetMonthly: body.TargetMonthly,
				IncentivePct:  body.IncentivePct,
			}
			st.Executives = append(st.Executives, created)
			snapshot = st
			return st, nil
		})
		if err != nil {
			return err
		}

		now := time.Now()
		return c.Status(fiber.StatusCreated).JSON(execResponse(&snapshot, created, state.StartOfMonthISO(now), state.TodayISO()))
	}
}

// GET /api/executives
// Her satır ay başından bugüne ciro, hedef yüzdesi ve prim tutarıyla döner.
func ListExecutivesHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()

		now := time.Now()
		monthStart := state.StartOfMonthISO(now)
		monthEnd := state.TodayISO()

		res := make([]ExecutiveResponse, 0, len(st.Executives))
		for _, e := range st.Executives {
			res = append(res, execResponse(&st, e, monthStart, monthEnd))
		}

		return c.JSON(res)
	}
}

// GET /api/executives/:id
func GetExecutiveHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		st := store.Read()

		e := st.FindExecutive(id)
		if e == nil {
			return fiber.NewError(fiber.StatusNotFound, "Temsilci bulunamadı")
		}

		now := time.Now()
		return c.JSON(execResponse(&st, *e, state.StartOfMonthISO(now), state.TodayISO()))
	}
}

// PUT /api/executives/:id
func UpdateExecutiveHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body ExecutiveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if err := validateRequest(&body); err != nil {
			return err
		}

		var updated state.Executive
		var snapshot state.AppState
		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			e := st.FindExecutive(id)
			if e == nil {
				return st, fiber.NewError(fiber.StatusNotFound, "Temsilci bulunamadı")
			}
			if st.FindBranch(body.BranchID) == nil {
				return st, fiber.NewError(fiber.StatusBadRequest, "Seçilen şube bulunamadı")
			}

			// ID düzenlemede değiştirilemez
			e.Name = body.Name
			e.Phone = body.Phone
			e.Email = body.Email
			e.Territory = body.Territory
			e.BranchID = body.BranchID
			if body.JoinedOn != "" {
				e.JoinedOn = body.JoinedOn
			}
			e.TargetMonthly = body.TargetMonthly
			e.IncentivePct = body.IncentivePct

			updated = *e
			snapshot = st
			return st, nil
		})
		if err != nil {
			return err
		}

		now := time.Now()
		return c.JSON(execResponse(&snapshot, updated, state.StartOfMonthISO(now), state.TodayISO()))
	}
}

// DELETE /api/executives/:id
// Satış kaydı olan temsilci silinemez.
func DeleteExecutiveHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			if st.FindExecutive(id) == nil {
				return st, fiber.NewError(fiber.StatusNotFound, "Temsilci bulunamadı")
			}

			for _, s := range st.Sales {
				if s.ExecID == id {
					return st, fiber.NewError(fiber.StatusBadRequest, "Temsilci silinemez: satış kayıtları var")
				}
			}

			kept := make([]state.Executive, 0, len(st.Executives))
			for _, e := range st.Executives {
				if e.ID != id {
					kept = append(kept, e)
				}
			}
			st.Executives = kept
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
