package commands

import (
	"context"
	"errors"
	"time"

	"github.com/laplogger/internal/apiclient"
	"github.com/laplogger/internal/config"
	"github.com/laplogger/internal/logger"
	"github.com/laplogger/internal/session"
	"github.com/laplogger/internal/startup"
	"github.com/laplogger/internal/storage"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ErrNotLoggedIn: защищённая команда вызвана без сессии; до сервера запрос не доходит.
var ErrNotLoggedIn = errors.New("not logged in")

// Deps собирает внешние зависимости CLI. Пустые поля заполняются из конфига при запуске.
type Deps struct {
	Config *config.Config
	KV     storage.KV
	Doer   apiclient.Doer
}

type app struct {
	cfg    *config.Config
	kv     storage.KV
	ownsKV bool
	doer   apiclient.Doer

	sess *session.Store
	api  *apiclient.Client
}

func newApp(deps *Deps) *app {
	a := &app{}
	if deps != nil {
		a.cfg, a.kv, a.doer = deps.Config, deps.KV, deps.Doer
	}
	return a
}

// init поднимает цепочку config, logger, KV, session, apiclient и вызывает Restore. Сеть при старте не трогаем.
func (a *app) init(ctx context.Context) error {
	if a.sess != nil {
		return nil
	}
	if a.cfg == nil {
		a.cfg = config.Load()
	}
	logger.SetLevel(a.cfg.LogLevel)
	if a.kv == nil {
		kv, err := startup.OpenKV(ctx, a.cfg, 5*time.Second)
		if err != nil {
			return err
		}
		a.kv, a.ownsKV = kv, true
	}

	a.sess = session.New(a.kv, nil)
	opts := []apiclient.Option{apiclient.WithTimeout(a.cfg.HTTPTimeout)}
	if a.doer != nil {
		opts = append(opts, apiclient.WithDoer(a.doer))
	}
	a.api = apiclient.New(a.cfg.APIBaseURL, a.sess, opts...)
	a.sess.SetAuthenticator(a.api.Auth)
	a.sess.OnLogout(func() { logger.Debugf("session cleared") })

	if err := a.sess.Restore(ctx); err != nil {
		// испорченный профиль уже стёрт, продолжаем анонимно
		logger.Errorf("restore session: %v", err)
	}
	return nil
}

func (a *app) close() {
	if a.ownsKV && a.kv != nil {
		if err := a.kv.Close(); err != nil {
			logger.Errorf("close storage: %v", err)
		}
	}
}

// requireSession служит клиентским аналогом защищённого маршрута.
func (a *app) requireSession() error {
	if a.sess.State() != session.Authenticated {
		return ErrNotLoggedIn
	}
	return nil
}

// protected оборачивает RunE проверкой сессии.
func (a *app) protected(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(); err != nil {
			return err
		}
		return fn(cmd, args)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "laplogger",
		Short: "Swim practice and meet time tracker",
		Long: `laplogger records swim times for your swimmers against a LapLogger server.
Log in once; the session is kept locally until you log out or the server rejects it.`,
		Version:       version + " (" + commit + ", " + date + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
	}
	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newSwimmersCmd(a),
		newTimesCmd(a),
		newEventsCmd(a),
		newStrokesCmd(a),
		newDashboardCmd(a),
	)
	return root
}

// SetVersion задаёт версию, коммит и дату сборки (подставляются через -ldflags).
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute собирает корневую команду и выполняет её с аргументами args.
func Execute(ctx context.Context, args []string) error {
	a := newApp(nil)
	defer a.close()
	root := newRootCmd(a)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
