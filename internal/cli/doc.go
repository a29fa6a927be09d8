// Package cli provides the interactive primezone terminal client.
//
// It drives a dashboard.Controller from a line-oriented REPL. Startup shows a
// sync spinner while the controller restores the session; SIGINT or SIGTERM
// during that wait aborts the start. Access keys are read without echo.
//
// Commands:
//   - login [key] / logout
//   - members / switch <id>
//   - prev / next / shift <n>
//   - add <name...> / toggle <id> / delete <id> / list
//   - stats
//
// Habit ids may be abbreviated to any unique prefix.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
