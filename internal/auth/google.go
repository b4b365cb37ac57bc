package auth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// googleTokenInfo: Google tokeninfo endpoint'inin döndürdüğü alanlardan
// ihtiyacımız olanlar
type googleTokenInfo struct {
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Sub           string `json:"sub"`
}

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// verifyGoogleIDToken: ID token'ı Google'ın tokeninfo endpoint'ine sorar.
// Geçersiz token'da Google 400 döndürür.
func verifyGoogleIDToken(idToken string) (*googleTokenInfo, error) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	reqURL := googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	resp, err := client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo isteği başarısız: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo hatası: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo cevabı okunamadı: %v", err)
	}

	var info googleTokenInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("tokeninfo cevabı çözümlenemedi: %v", err)
	}

	if info.EmailVerified != "true" {
		return nil, fmt.Errorf("email doğrulanmamış")
	}

	return &info, nil
}
