package dashboard

import "time"

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now. The clock's location is used for all
// calendar arithmetic.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithIDGenerator replaces the habit id generator.
func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithLocale selects the weekday label locale of the trend series.
func WithLocale(locale string) Option {
	return func(c *Controller) {
		if locale != "" {
			c.locale = locale
		}
	}
}
