package admin

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBackend struct {
	data []byte
}

func (m *memBackend) Load() ([]byte, error)  { return m.data, nil }
func (m *memBackend) Save(data []byte) error { m.data = data; return nil }

func newTestApp(t *testing.T, st state.AppState) (*fiber.App, *state.Store) {
	t.Helper()

	data, err := json.Marshal(st)
	require.NoError(t, err)

	store := state.NewStore(&memBackend{data: data})
	store.Load()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Post("/api/branches", CreateBranchHandler(store))
	app.Get("/api/branches", ListBranchesHandler(store))
	app.Put("/api/branches/:id", UpdateBranchHandler(store))
	app.Delete("/api/branches/:id", DeleteBranchHandler(store))

	return app, store
}

func branchState() state.AppState {
	return state.AppState{
		Branches: []state.Branch{
			{ID: "b1", Name: "Merkez", City: "İstanbul"},
			{ID: "b2", Name: "Ankara Şube", City: "Ankara"},
			{ID: "b3", Name: "Boş Şube", City: "İzmir"},
		},
		Executives: []state.Executive{{ID: "E001", Name: "Mehmet", BranchID: "b1"}},
		Sales:      []state.Sale{{ID: "s1", BillNo: "B1", BranchID: "b2"}},
		Inventory:  []state.InventoryItem{},
		Categories: []string{},
	}
}

func TestCreateBranchHandler(t *testing.T) {
	app, store := newTestApp(t, branchState())

	req := httptest.NewRequest("POST", "/api/branches", strings.NewReader(`{"name":"  Bursa Şube ","city":"Bursa"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created BranchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Bursa Şube", created.Name, "ad kırpılarak kaydedilir")

	assert.Len(t, store.Read().Branches, 4)
}

func TestCreateBranchHandler_BosAd(t *testing.T) {
	app, store := newTestApp(t, branchState())

	req := httptest.NewRequest("POST", "/api/branches", strings.NewReader(`{"name":"   ","city":"Bursa"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Len(t, store.Read().Branches, 3)
}

func TestDeleteBranchHandler_TemsilciKullaniyor(t *testing.T) {
	app, store := newTestApp(t, branchState())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/branches/b1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Len(t, store.Read().Branches, 3, "korunan şube silinmemeli")
}

func TestDeleteBranchHandler_SatisKullaniyor(t *testing.T) {
	app, store := newTestApp(t, branchState())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/branches/b2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Len(t, store.Read().Branches, 3)
}

func TestDeleteBranchHandler_BosSube(t *testing.T) {
	app, store := newTestApp(t, branchState())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/branches/b3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	st := store.Read()
	assert.Len(t, st.Branches, 2)
	assert.Nil(t, st.FindBranch("b3"))
}

func TestDeleteBranchHandler_Bulunamadi(t *testing.T) {
	app, _ := newTestApp(t, branchState())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/branches/yok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateBranchHandler_KismiGuncelleme(t *testing.T) {
	app, store := newTestApp(t, branchState())

	req := httptest.NewRequest("PUT", "/api/branches/b3", strings.NewReader(`{"city":"Antalya"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	st := store.Read()
	b := st.FindBranch("b3")
	require.NotNil(t, b)
	assert.Equal(t, "Boş Şube", b.Name, "gönderilmeyen alan değişmez")
	assert.Equal(t, "Antalya", b.City)
}
