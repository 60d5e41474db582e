package pricing

import "time"

// parseDate parses "YYYY-MM-DD" without layout parsing. Returns zero time
// and false on invalid input.
func parseDate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// AgeOn returns the whole-year age for a YYYY-MM-DD birth date as of the
// given date: calendar-year difference, minus one when the birthday has not
// yet been reached that year. The second return is false when the birth
// date is empty or unparseable.
func AgeOn(birthDate string, asOf time.Time) (int, bool) {
	birth, ok := parseDate(birthDate)
	if !ok {
		return 0, false
	}
	age := asOf.Year() - birth.Year()
	if asOf.Month() < birth.Month() ||
		(asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		age--
	}
	return age, true
}
