// Package timezone pins every wall-clock read to the hotel's timezone,
// configured through APP_TIMEZONE as an IANA name such as "Asia/Jakarta".
// An unknown name falls back to UTC.
//
// Today is the calendar date a rate query uses when it names none:
//
//	today := timezone.Today()
//	stamp := timezone.Format(timezone.Now(), time.RFC3339)
package timezone
