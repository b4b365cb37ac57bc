package models

import "time"

// AppSnapshot: uygulama durumunun tamamı, tek anahtar altında tek JSON nesnesi.
// Versiyon alanı yok; şema evrimi yüklerken eksik alanları varsayılana
// çekerek yönetiliyor (bkz. state.AppState.Normalize).
type AppSnapshot struct {
	Key       string `gorm:"primaryKey;size:50"`
	Data      string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}
