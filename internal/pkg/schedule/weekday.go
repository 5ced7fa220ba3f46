package schedule

import (
	"fmt"
	"strings"
)

// Weekday is the canonical day enumeration. Every raw day token entering the
// engine must resolve to exactly one of these seven values; anything else is a
// validation error, never a silent drop.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"MONDAY",
	"TUESDAY",
	"WEDNESDAY",
	"THURSDAY",
	"FRIDAY",
	"SATURDAY",
	"SUNDAY",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("WEEKDAY(%d)", int(d))
	}
	return weekdayNames[d]
}

// Upstream systems send day names in Spanish or English, full or abbreviated,
// with or without accents. The table is keyed on the uppercased, de-accented
// form.
var weekdayTokens = map[string]Weekday{
	"LUNES": Monday, "LUN": Monday, "MONDAY": Monday, "MON": Monday,
	"MARTES": Tuesday, "MAR": Tuesday, "TUESDAY": Tuesday, "TUE": Tuesday, "TUES": Tuesday,
	"MIERCOLES": Wednesday, "MIE": Wednesday, "WEDNESDAY": Wednesday, "WED": Wednesday,
	"JUEVES": Thursday, "JUE": Thursday, "THURSDAY": Thursday, "THU": Thursday, "THUR": Thursday, "THURS": Thursday,
	"VIERNES": Friday, "VIE": Friday, "FRIDAY": Friday, "FRI": Friday,
	"SABADO": Saturday, "SAB": Saturday, "SATURDAY": Saturday, "SAT": Saturday,
	"DOMINGO": Sunday, "DOM": Sunday, "SUNDAY": Sunday, "SUN": Sunday,
}

var accentReplacer = strings.NewReplacer(
	"Á", "A",
	"É", "E",
	"Í", "I",
	"Ó", "O",
	"Ú", "U",
	"Ü", "U",
)

// ParseWeekday normalizes a raw day token to its canonical Weekday. It must be
// called at every ingestion boundary so downstream comparisons are always
// canonical-to-canonical; comparing raw tokens is how the legacy system ended
// up with silent empty intersections on accented-vs-unaccented mismatches.
func ParseWeekday(raw string) (Weekday, error) {
	token := accentReplacer.Replace(strings.ToUpper(strings.TrimSpace(raw)))
	day, ok := weekdayTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, raw)
	}
	return day, nil
}
