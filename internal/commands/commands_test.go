package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/laplogger/internal/apiclient"
	"github.com/laplogger/internal/config"
	"github.com/laplogger/internal/handler"
	"github.com/laplogger/internal/repository"
	"github.com/laplogger/internal/service"
	"github.com/laplogger/internal/session"
	"github.com/laplogger/internal/storage/memory"
	"golang.org/x/crypto/bcrypt"
)

type harness struct {
	srv  *httptest.Server
	repo *repository.Store
	auth *service.AuthService
	kv   *memory.Client
	hits atomic.Int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{repo: repository.NewStore(), kv: memory.New()}
	h.auth = service.NewAuthService(h.repo, "test-secret", service.WithBcryptCost(bcrypt.MinCost))
	router := handler.NewRouter(h.repo, h.auth, "")
	h.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.hits.Add(1)
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(h.srv.Close)
	return h
}

// run выполняет один запуск CLI на общем KV, как повторный запуск процесса.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := newApp(&Deps{
		Config: &config.Config{APIBaseURL: h.srv.URL + "/api", HTTPTimeout: 5 * time.Second, LogLevel: "info"},
		KV:     h.kv,
	})
	defer a.close()
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := h.run(t, args...)
	if err != nil {
		t.Fatalf("laplogger %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func (h *harness) registerCoach(t *testing.T) {
	t.Helper()
	h.mustRun(t, "register", "-u", "coach", "-e", "coach@pool.test", "-p", "secret")
}

func TestRegisterThenSessionSurvivesRestart(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)

	out := h.mustRun(t, "whoami")
	if !strings.Contains(out, "coach") || !strings.Contains(out, "coach@pool.test") {
		t.Fatalf("whoami = %q", out)
	}
	out = h.mustRun(t, "swimmers", "add", "--name", "Ada Lovelace")
	if !strings.Contains(out, "Ada Lovelace") {
		t.Fatalf("swimmers add = %q", out)
	}
	out = h.mustRun(t, "swimmers", "ls")
	if !strings.Contains(out, "Ada Lovelace") {
		t.Fatalf("swimmers ls = %q", out)
	}
}

func TestProtectedCommandWithoutSessionStaysLocal(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "swimmers", "ls")
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
	if n := h.hits.Load(); n != 0 {
		t.Errorf("server hits = %d, want 0", n)
	}
	if got := Describe(err); !strings.Contains(got, "laplogger login") {
		t.Errorf("Describe = %q", got)
	}
	out := h.mustRun(t, "whoami")
	if !strings.Contains(out, "Not logged in") {
		t.Errorf("whoami = %q", out)
	}
}

func TestLoginWithBadPassword(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)
	h.mustRun(t, "logout")

	_, err := h.run(t, "login", "-u", "coach", "-p", "wrong")
	if !errors.Is(err, apiclient.ErrAuthentication) {
		t.Fatalf("err = %v, want ErrAuthentication", err)
	}
	if got := Describe(err); got != "Invalid credentials" {
		t.Errorf("Describe = %q", got)
	}
	if tok, _ := h.kv.Get(context.Background(), session.KeyToken); tok != "" {
		t.Errorf("token stored after failed login: %q", tok)
	}

	h.mustRun(t, "login", "-u", "coach", "-p", "secret")
	if tok, _ := h.kv.Get(context.Background(), session.KeyToken); tok == "" {
		t.Error("token not stored after login")
	}
}

func TestLoginReadsPasswordFromStdin(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)
	h.mustRun(t, "logout")

	a := newApp(&Deps{
		Config: &config.Config{APIBaseURL: h.srv.URL + "/api", HTTPTimeout: 5 * time.Second},
		KV:     h.kv,
	})
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("secret\n"))
	root.SetArgs([]string{"login", "-u", "coach"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out.String(), "Logged in as coach") {
		t.Errorf("out = %q", out.String())
	}
}

func TestTimesAddAndList(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)
	h.mustRun(t, "swimmers", "add", "--name", "Ada")

	out := h.mustRun(t, "times", "add", "--swimmer", "1", "--event", "1", "--time", "1:05.25", "--notes", "negative split")
	if !strings.Contains(out, "01:05.250") || !strings.Contains(out, "50m Freestyle") {
		t.Fatalf("times add = %q", out)
	}
	out = h.mustRun(t, "times", "add", "-s", "1", "-e", "2", "--min", "0", "--sec", "59", "--ms", "9", "--meet", "2")
	if !strings.Contains(out, "00:59.009") {
		t.Fatalf("times add parts = %q", out)
	}

	all := h.mustRun(t, "times", "ls")
	if !strings.Contains(all, "01:05.250") || !strings.Contains(all, "00:59.009") {
		t.Fatalf("times ls = %q", all)
	}
	meets := h.mustRun(t, "times", "ls", "--filter", "meets")
	if !strings.Contains(meets, "State Championships") || strings.Contains(meets, "01:05.250") {
		t.Fatalf("times ls --filter meets = %q", meets)
	}
	practice := h.mustRun(t, "times", "ls", "-s", "1", "-f", "practice")
	if !strings.Contains(practice, "01:05.250") || strings.Contains(practice, "00:59.009") {
		t.Fatalf("times ls --filter practice = %q", practice)
	}

	_, err := h.run(t, "times", "ls", "--filter", "relays")
	if err == nil {
		t.Fatal("expected error for unknown filter")
	}
}

func TestTimesAddRejectsBadTime(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)
	h.mustRun(t, "swimmers", "add", "--name", "Ada")
	before := h.hits.Load()

	_, err := h.run(t, "times", "add", "-s", "1", "-e", "1", "--time", "1:60.000")
	if !errors.Is(err, apiclient.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if got := Describe(err); !strings.Contains(got, "MM:SS.mmm") {
		t.Errorf("Describe = %q", got)
	}
	if h.hits.Load() != before {
		t.Error("invalid time reached the server")
	}

	_, err = h.run(t, "times", "add", "-s", "1", "-e", "1")
	if !errors.Is(err, apiclient.ErrValidation) {
		t.Fatalf("missing time: err = %v", err)
	}
}

func TestTimesAddWithoutSwimmerShowsChoices(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)
	h.mustRun(t, "swimmers", "add", "--name", "Grace Hopper")

	out, err := h.run(t, "times", "add", "--time", "30.00")
	if !errors.Is(err, apiclient.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	for _, want := range []string{"Grace Hopper", "50m Freestyle", "400m Individual Medley"} {
		if !strings.Contains(out, want) {
			t.Errorf("choices missing %q:\n%s", want, out)
		}
	}
}

func TestDashboard(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)

	out := h.mustRun(t, "dashboard")
	if !strings.Contains(out, "N/A") || !strings.Contains(out, "No times recorded yet.") {
		t.Fatalf("empty dashboard = %q", out)
	}

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	var n int
	h.repo.SetClock(func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	})
	h.mustRun(t, "swimmers", "add", "--name", "Ada")
	for i := 1; i <= 7; i++ {
		h.mustRun(t, "times", "add", "-s", "1", "-e", "1", "--time", fmt.Sprintf("00:3%d.000", i))
	}
	out = h.mustRun(t, "dash")
	if !strings.Contains(out, "00:37.000") {
		t.Errorf("latest time missing:\n%s", out)
	}
	if strings.Contains(out, "00:31.000") || strings.Contains(out, "00:32.000") {
		t.Errorf("dashboard shows more than the recent times:\n%s", out)
	}
}

func TestRevokedSessionForcesLogout(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)
	tok, _ := h.kv.Get(context.Background(), session.KeyToken)
	if err := h.auth.Revoke(tok); err != nil {
		t.Fatal(err)
	}

	_, err := h.run(t, "events")
	if !apiclient.IsAuthorization(err) {
		t.Fatalf("err = %v, want ErrAuthorization", err)
	}
	if got := Describe(err); got != "session expired, run 'laplogger login'" {
		t.Errorf("Describe = %q", got)
	}
	if tok, _ := h.kv.Get(context.Background(), session.KeyToken); tok != "" {
		t.Errorf("token kept after 401: %q", tok)
	}
	if _, err := h.run(t, "events"); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("second call err = %v, want ErrNotLoggedIn", err)
	}
}

func TestNetworkErrorDescribed(t *testing.T) {
	h := newHarness(t)
	h.registerCoach(t)
	h.srv.Close()

	_, err := h.run(t, "strokes")
	if !apiclient.IsNetwork(err) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
	if got := Describe(err); !strings.Contains(got, "try again") {
		t.Errorf("Describe = %q", got)
	}
	if tok, _ := h.kv.Get(context.Background(), session.KeyToken); tok == "" {
		t.Error("network error must not end the session")
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdefgh", 6, "abc..."},
		{"Łódź", 4, "Łódź"},
		{"abcd", 2, "ab"},
	}
	for _, tt := range tests {
		if got := cell(tt.in, tt.width); got != tt.want {
			t.Errorf("cell(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
