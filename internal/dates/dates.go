package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kayıtlarda kullanılan tarih biçimi: "02 January 2006".
// Karşılaştırmalar bu metin üzerinden yapılır, takvim aritmetiği yoktur.
const Layout = "02 January 2006"

// İş günü UTC+6'ya göre belirlenir: anlık zamana sabit 6 saat eklenir,
// sonra takvim günü alınır. Zaman dilimi farkındalığı bilinçli olarak yok.
const businessOffset = 6 * time.Hour

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Today: bugünün iş günü, kayıt biçiminde.
func Today() string {
	return FormatDay(time.Now())
}

// FormatDay: verilen anı iş gününe çevirip kayıt biçiminde döndürür.
func FormatDay(t time.Time) string {
	return t.UTC().Add(businessOffset).Format(Layout)
}

// ParseQuery: rapor sorgularındaki "DD-MM-YY" girdisini kayıt biçimine çevirir.
// Gün tek haneliyse soluna sıfır eklenir, yıl "20" öneki alır. Ay 1-12
// aralığının dışındaysa hata dönmez; ay adı "Invalid" olur ve hiçbir kayıtla
// eşleşmez (orijinal davranış).
func ParseQuery(input string) (string, error) {
	parts := strings.Split(input, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("tarih biçimi DD-MM-YY olmalı: %q", input)
	}

	day := parts[0]
	if len(day) < 2 {
		day = "0" + day
	}

	month := "Invalid"
	if m, err := strconv.Atoi(parts[1]); err == nil && m >= 1 && m <= 12 {
		month = monthNames[m-1]
	}

	return day + " " + month + " 20" + parts[2], nil
}
