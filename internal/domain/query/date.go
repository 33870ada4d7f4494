package query

import "time"

// DateLayout is the wire format for endDate/updateDate fields,
// day and month zero-padded.
const DateLayout = "02/01/2006"

// Today returns the server's current date stamp.
func Today() string {
	return time.Now().Format(DateLayout)
}

// parseDate turns a DD/MM/YYYY string into a comparable calendar date.
// Unparseable values collapse to the zero time and sort first.
func parseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func dateBefore(a, b string) bool {
	return parseDate(a).Before(parseDate(b))
}
