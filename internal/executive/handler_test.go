package executive

import (
	"encoding/json"
	"net/http"
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
	app.Post("/api/executives", CreateExecutiveHandler(store))
	app.Get("/api/executives", ListExecutivesHandler(store))
	app.Get("/api/executives/:id", GetExecutiveHandler(store))
	app.Put("/api/executives/:id", UpdateExecutiveHandler(store))
	app.Delete("/api/executives/:id", DeleteExecutiveHandler(store))

	return app, store
}

func execState() state.AppState {
	return state.AppState{
		Branches: []state.Branch{{ID: "b1", Name: "Merkez", City: "İstanbul"}},
		Executives: []state.Executive{
			{ID: "E001", Name: "Mehmet", BranchID: "b1", TargetMonthly: 100000},
			{ID: "E002", Name: "Ayşe", BranchID: "b1"},
		},
		Sales:      []state.Sale{{ID: "s1", BillNo: "B1", Date: "2026-08-01", ExecID: "E001", BranchID: "b1", Qty: 1, UnitPrice: 500}},
		Inventory:  []state.InventoryItem{},
		Categories: []string{},
	}
}

func postExec(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/executives", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateExecutiveHandler_OtomatikID(t *testing.T) {
	app, store := newTestApp(t, execState())

	resp := postExec(t, app, `{"name":"Fatma Kaya","branchId":"b1","targetMonthly":50000}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created ExecutiveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "E003", created.ID, "id boş bırakılınca sıradaki numara verilir")
	assert.Equal(t, "Merkez", created.BranchName)

	assert.Len(t, store.Read().Executives, 3)
}

func TestCreateExecutiveHandler_TekrarEdenID(t *testing.T) {
	app, store := newTestApp(t, execState())

	resp := postExec(t, app, `{"id":"E001","name":"Fatma Kaya","branchId":"b1"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Len(t, store.Read().Executives, 2)
}

func TestCreateExecutiveHandler_SubeYok(t *testing.T) {
	app, store := newTestApp(t, execState())

	resp := postExec(t, app, `{"name":"Fatma Kaya","branchId":"yok"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Len(t, store.Read().Executives, 2)
}

func TestDeleteExecutiveHandler_SatisKaydiVar(t *testing.T) {
	app, store := newTestApp(t, execState())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/executives/E001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// İki taraf da olduğu gibi kalır
	st := store.Read()
	assert.NotNil(t, st.FindExecutive("E001"))
	assert.Len(t, st.Sales, 1)
}

func TestDeleteExecutiveHandler_SatissizTemsilci(t *testing.T) {
	app, store := newTestApp(t, execState())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/executives/E002", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	st := store.Read()
	assert.Nil(t, st.FindExecutive("E002"))
	assert.Len(t, st.Executives, 1)
}

func TestDeleteExecutiveHandler_Bulunamadi(t *testing.T) {
	app, _ := newTestApp(t, execState())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/executives/E999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateExecutiveHandler_IDKorunur(t *testing.T) {
	app, store := newTestApp(t, execState())

	body := `{"id":"E777","name":"Mehmet Yılmaz","branchId":"b1","targetMonthly":120000}`
	req := httptest.NewRequest("PUT", "/api/executives/E001", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	st := store.Read()
	assert.Nil(t, st.FindExecutive("E777"))
	e := st.FindExecutive("E001")
	require.NotNil(t, e)
	assert.Equal(t, "Mehmet Yılmaz", e.Name)
	assert.Equal(t, 120000.0, e.TargetMonthly)
}

func TestListExecutivesHandler_PerformansAlanlari(t *testing.T) {
	app, _ := newTestApp(t, execState())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/executives", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []ExecutiveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "E001", rows[0].ID)
	assert.Equal(t, "Merkez", rows[0].BranchName)
	assert.GreaterOrEqual(t, rows[0].Attainment, 0)
}
