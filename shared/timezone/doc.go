// Package timezone provides the application clock.
//
// All calendar days exchanged with the marketplace are ISO yyyy-MM-dd strings interpreted in the
// application timezone:
//
//	today := timezone.Today()                 // "2024-12-24"
//	day, err := timezone.ParseDay("2024-12-28")
//
// The timezone is configured via the APP_TIMEZONE environment variable using IANA names
// ("UTC", "Asia/Jakarta", "Europe/London") and is initialized when the package is imported.
package timezone
