// Package services contains the application services of primezone.
//
// SessionService resolves and persists the login session (the three session
// markers); HabitService loads and saves the habit store blob. Both sit on a
// metadata.Repository and never panic on stored data: unreadable values
// degrade to defaults and are logged.
package services
