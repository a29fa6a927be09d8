package datex

import "time"

// Short uppercase weekday names, Sunday first. Unknown locales use English.
var weekdayNames = map[string][7]string{
	"pt-BR": {"DOM", "SEG", "TER", "QUA", "QUI", "SEX", "SÁB"},
	"en":    {"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
}

// WeekdayLabel returns the short weekday label of t for locale.
func WeekdayLabel(t time.Time, locale string) string {
	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames["en"]
	}
	return names[t.Weekday()]
}

// Locales lists the supported label locales.
func Locales() []string {
	return []string{"pt-BR", "en"}
}
