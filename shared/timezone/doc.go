// Package timezone provides timezone utilities for the application.
//
//	now := timezone.Now()                    // current time in app timezone
//	appTime := timezone.ToAppTime(someTime)  // convert any time to app timezone
//	formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//	t, err := timezone.Parse("2006-01-02", "2026-01-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use standard IANA timezone names
// ("UTC", "Asia/Kathmandu", "Europe/London") for reliable behavior.
package timezone
