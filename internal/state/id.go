package state

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// GenExecID: mevcut temsilci id'lerindeki rakamları tarar, en büyüğünün bir
// fazlasını "E" + 3 haneli sıfır dolgulu olarak üretir (E001, E002, ...).
// Tek kullanıcılı araç için yeterli; eşzamanlı yazarlar için güvenli değil.
func GenExecID(execs []Executive) string {
	max := 0
	for _, e := range execs {
		var digits strings.Builder
		for _, r := range e.ID {
			if unicode.IsDigit(r) {
				digits.WriteRune(r)
			}
		}
		n, err := strconv.Atoi(digits.String())
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("E%03d", max+1)
}

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// UID: prefix + rastgele base36 parça + base36 timestamp.
// Kriptografik benzersizlik iddiası yok, tek oturumluk kullanım için yeterli.
func UID(prefix string) string {
	var frag [6]byte
	for i := range frag {
		frag[i] = base36Chars[rand.Intn(36)]
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return prefix + "_" + string(frag[:]) + "_" + ts
}

// TodayISO: bugünün tarihi YYYY-MM-DD
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// StartOfMonthISO: verilen tarihin ait olduğu ayın ilk günü YYYY-MM-DD
func StartOfMonthISO(t time.Time) string {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Format("2006-01-02")
}
