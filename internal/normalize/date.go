package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Date is a partial-precision date: year only, year+month, or a full
// day. Month and Day are zero when unknown; they are never fabricated.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the most precise ISO form the date carries.
func (d Date) String() string {
	switch {
	case d.Day != 0:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case d.Month != 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d", d.Year)
	}
}

var (
	dayPattern   = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})-([0-9]{2})$`)
	monthPattern = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})$`)
	yearPattern  = regexp.MustCompile(`^[0-9]{4}$`)

	bornPattern = regexp.MustCompile(`född ([0-9]{4}-[0-9]{2}-[0-9]{2})`)
	diedPattern = regexp.MustCompile(`död ([0-9]{4}-[0-9]{2}-[0-9]{2})`)

	decadePattern = regexp.MustCompile(`^([0-9]{3}0)-tal(et)?$`)
)

// ParseDate parses "YYYY", "YYYY-MM" and "YYYY-MM-DD" into a
// partial-precision date. Anything else reports false.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if m := dayPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return Date{}, false
		}
		return Date{Year: year, Month: month, Day: day}, true
	}
	if m := monthPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return Date{}, false
		}
		return Date{Year: year, Month: month}, true
	}
	if yearPattern.MatchString(s) {
		year, _ := strconv.Atoi(s)
		return Date{Year: year}, true
	}
	return Date{}, false
}

// Lifespan holds birth and death parsed from a combined dates field.
// Either side may be absent.
type Lifespan struct {
	Birth *Date
	Death *Date
}

// ParseLifespan parses a "YYYY-YYYY" range where either bound may be
// marked unknown with "?". An unknown or malformed bound is absent,
// never guessed.
func ParseLifespan(s string) Lifespan {
	var span Lifespan
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "-") {
		return span
	}
	parts := strings.SplitN(s, "-", 2)
	birth := strings.TrimSpace(parts[0])
	death := strings.TrimSpace(parts[1])
	if !strings.Contains(birth, "?") {
		if d, ok := ParseDate(birth); ok {
			span.Birth = &d
		}
	}
	if !strings.Contains(death, "?") {
		if d, ok := ParseDate(death); ok {
			span.Death = &d
		}
	}
	return span
}

// ExtractLifeEvents scans a free-text biographical sentence for the
// marker words "född" (born) and "död" (died) followed by a full date,
// refining whatever a range parse produced.
func ExtractLifeEvents(s string) Lifespan {
	var span Lifespan
	raw := strings.ToLower(s)
	if m := bornPattern.FindStringSubmatch(raw); m != nil {
		if d, ok := ParseDate(m[1]); ok {
			span.Birth = &d
		}
	}
	if m := diedPattern.FindStringSubmatch(raw); m != nil {
		if d, ok := ParseDate(m[1]); ok {
			span.Death = &d
		}
	}
	return span
}

// ParseDecade recognizes Swedish decade forms like "1890-tal" and
// "1890-talet" and reports the decade's first year.
func ParseDecade(s string) (int, bool) {
	m := decadePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	year, _ := strconv.Atoi(m[1])
	return year, true
}
