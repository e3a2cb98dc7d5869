package attendance

import "strings"

var regionSuffixes = []string{"시", "구", "군", "동", "읍", "면"}

// SimplifyLocation keeps the first two address tokens naming an administrative
// region (city, district, town). Unrecognised addresses are returned unchanged.
func SimplifyLocation(loc string) string {
	loc = strings.TrimSpace(loc)
	if loc == "" || loc == "-" {
		return "-"
	}

	var kept []string
	for _, part := range strings.Fields(loc) {
		for _, suffix := range regionSuffixes {
			if strings.Contains(part, suffix) {
				kept = append(kept, part)
				break
			}
		}
		if len(kept) == 2 {
			break
		}
	}
	if len(kept) == 0 {
		return loc
	}
	return strings.Join(kept, " ")
}
