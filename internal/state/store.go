package state

import (
	"encoding/json"
	"log"
	"sync"
)

// Backend: snapshot'ın kalıcı saklandığı yer. Üretimde Postgres'teki tek
// satır (internal/database.SnapshotBackend), testlerde bellek içi bir stub.
type Backend interface {
	// Load: kayıtlı snapshot'ı döndürür; kayıt yoksa (nil, nil)
	Load() ([]byte, error)
	// Save: snapshot'ın tamamını üzerine yazar
	Save(data []byte) error
}

// Store: tüm domain koleksiyonlarının tek doğruluk kaynağı. Snapshot bellekte
// tutulur, her commit'te serialize edilip backend'e yazılır. Fiber handler'ları
// eşzamanlı çalıştığı için okuma/yazma RWMutex ile sıralanır; her commit en
// son commit edilmiş snapshot üzerinden read-modify-write yapar.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	state   AppState
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load: açılışta kayıtlı snapshot'ı okur. Kayıt yoksa veya bozuksa demo
// verisiyle devam eder; okuma hatası hiçbir zaman çağırana fırlatılmaz.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Load()
	if err != nil {
		log.Printf("Snapshot okunamadı, demo veriyle başlanıyor: %v", err)
		s.state = DemoState()
		return
	}
	if data == nil {
		log.Println("Kayıtlı snapshot yok, demo veriyle başlanıyor")
		s.state = DemoState()
		return
	}

	var st AppState
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("Snapshot çözümlenemedi, demo veriyle başlanıyor: %v", err)
		s.state = DemoState()
		return
	}

	st.Normalize()
	s.state = st
}

// Read: mevcut snapshot'ın kopyasını döndürür
func (s *Store) Read() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Commit: tek güncelleme noktası. apply fonksiyonu en güncel snapshot'ın
// kopyasını alır, yenisini üretir; hata döndürürse hiçbir değişiklik olmaz.
// Başarılı commit'te snapshot bütün olarak değiştirilir ve kalıcılaştırılır.
// Yazma hatası yutulur: o commit için veri sadece bellekte kalır, istek
// başarısız sayılmaz.
func (s *Store) Commit(apply func(st AppState) (AppState, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := apply(s.state.Clone())
	if err != nil {
		return err
	}
	next.Normalize()
	s.state = next

	data, err := json.Marshal(next)
	if err != nil {
		log.Printf("Snapshot serialize edilemedi: %v", err)
		return nil
	}
	if err := s.backend.Save(data); err != nil {
		log.Printf("Snapshot kaydedilemedi (bellekte devam ediliyor): %v", err)
	}
	return nil
}
