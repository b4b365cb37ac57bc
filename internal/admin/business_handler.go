package admin

import (
	"bytes"
	"encoding/base64"
	"image"
	"io"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"satistakip-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

const (
	maxLogoBytes = 2 * 1024 * 1024 // 2MB
	maxLogoEdge  = 200             // piksel
)

type BusinessResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Logo    string `json:"logo,omitempty"`
}

type UpdateBusinessRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// ----------------------------------------
// İŞLETME PROFİLİ
// ----------------------------------------

// GET /api/business
func GetBusinessHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := store.Read()
		return c.JSON(BusinessResponse{
			Name:    st.Business.Name,
			Address: st.Business.Address,
			Logo:    st.Business.Logo,
		})
	}
}

// PUT /api/business
func UpdateBusinessHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateBusinessRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		var updated state.Business
		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			if body.Name != nil {
				st.Business.Name = strings.TrimSpace(*body.Name)
			}
			if body.Address != nil {
				st.Business.Address = strings.TrimSpace(*body.Address)
			}
			updated = st.Business
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.JSON(BusinessResponse{Name: updated.Name, Address: updated.Address, Logo: updated.Logo})
	}
}

// POST /api/business/logo
// Logo multipart olarak yüklenir, data URI olarak snapshot'ın içinde saklanır.
// JPEG/PNG/GIF, en fazla 2MB ve 200x200 piksel.
func UploadLogoHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("logo")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if fileHeader.Size > maxLogoBytes {
			return fiber.NewError(fiber.StatusBadRequest, "Logo en fazla 2MB olabilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı")
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya okunamadı")
		}
		if len(data) > maxLogoBytes {
			return fiber.NewError(fiber.StatusBadRequest, "Logo en fazla 2MB olabilir")
		}

		contentType := http.DetectContentType(data)
		switch contentType {
		case "image/jpeg", "image/png", "image/gif":
			// kabul
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Sadece JPEG, PNG veya GIF yüklenebilir")
		}

		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Görsel çözümlenemedi")
		}
		if cfg.Width > maxLogoEdge || cfg.Height > maxLogoEdge {
			return fiber.NewError(fiber.StatusBadRequest, "Logo en fazla 200x200 piksel olabilir")
		}

		dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)

		err = store.Commit(func(st state.AppState) (state.AppState, error) {
			st.Business.Logo = dataURI
			return st, nil
		})
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{"logo": dataURI})
	}
}

// DELETE /api/business/logo
func DeleteLogoHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := store.Commit(func(st state.AppState) (state.AppState, error) {
			st.Business.Logo = ""
			return st, nil
		})
		if err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
