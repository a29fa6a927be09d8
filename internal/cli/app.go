package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrijs2005/primezone/internal/config"
	"github.com/dmitrijs2005/primezone/internal/dashboard"
	"github.com/dmitrijs2005/primezone/internal/logging"
)

const (
	syncLabel       = "Sincronizando Rede..."
	spinnerInterval = 100 * time.Millisecond
)

type App struct {
	config *config.Config
	ctrl   *dashboard.Controller
	logger logging.Logger
	notice notice
	in     io.Reader
	out    io.Writer
}

// NewApp binds the REPL to a controller. Input is read from os.Stdin and
// prompts go to os.Stdout.
func NewApp(c *config.Config, ctrl *dashboard.Controller, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &App{config: c, ctrl: ctrl, logger: logger, in: os.Stdin, out: os.Stdout}
}

// initSignalHandler cancels on SIGINT, SIGTERM or SIGQUIT. The returned
// func detaches the handler.
func initSignalHandler(cancelFunc context.CancelFunc) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// start restores the dashboard behind the sync spinner. An interrupt during
// the wait aborts it.
func (a *App) start(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	stopSignals := initSignalHandler(cancelFunc)
	defer stopSignals()

	stopSpinner := startSpinner(a.out, syncLabel, spinnerInterval)
	err := a.ctrl.Start(ctx)
	stopSpinner()

	return err
}

// Run starts the dashboard and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.notice.Stop()

	if err := a.start(ctx); err != nil {
		a.logger.Error(ctx, "startup aborted", "error", err)
		return err
	}

	a.logger.Info(ctx, "Starting REPL...")
	printlnFn(titleStyle.Render("PRIMEZONE") + " (type 'help' for commands)")
	if a.isLoggedIn() {
		printlnFn(renderHabits(a.ctrl.View()))
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.in))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.View().Session.IsLogged
}

func (a *App) getStatus() string {
	v := a.ctrl.View()

	var parts []string
	if v.Session.IsLogged {
		who := v.Member.FirstName()
		if v.Session.IsAdmin {
			who += " admin"
		}
		parts = append(parts, who, v.SelectedDate)
	}
	if msg := a.notice.Current(); msg != "" {
		parts = append(parts, noticeStyle.Render(msg))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s) ", strings.Join(parts, " "))
}
