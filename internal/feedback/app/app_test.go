package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Leopold1975/feedback_control/internal/pkg/config"
	"github.com/stretchr/testify/suite"
)

const configTemplate = `
console:
  prompt: "> "
  shutdownTimeout: 2s
logger:
  level: debug
  output: [%LOG%]
  errOutput: [%LOG%]
store:
  hashAlgorithm: sha256
auth:
  ttl: 1m
  secret: app-test
export:
  path: %EXPORT%
`

type FeedbackSuite struct {
	suite.Suite
	cfg     config.Config
	logPath string
}

func TestFeedbackApp(t *testing.T) {
	suite.Run(t, new(FeedbackSuite))
}

func (fs *FeedbackSuite) SetupSuite() {
	dir := fs.T().TempDir()
	fs.logPath = filepath.Join(dir, "app.log")

	body := strings.NewReplacer(
		"%LOG%", fs.logPath,
		"%EXPORT%", filepath.Join(dir, "feedback_export.txt"),
	).Replace(configTemplate)

	path := filepath.Join(dir, "config_test.yaml")
	fs.Require().NoError(os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.New(path)
	fs.Require().NoError(err, "cannot get config")

	fs.cfg = cfg
}

func (fs *FeedbackSuite) run(script ...string) string {
	var out bytes.Buffer

	a, err := New(fs.cfg, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	fs.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fs.Require().NoError(a.Run(ctx))

	return out.String()
}

func (fs *FeedbackSuite) TestAdminFlow() {
	out := fs.run(
		"login admin admin 123",
		"addform Onboarding | First week | Clarity, Support",
		"adduser mallory s3cr3t-pw USER",
		"forms",
		"export",
		"quit",
	)

	fs.Contains(out, "Welcome, admin (ADMIN).")
	fs.Contains(out, `Form "Onboarding" created.`)
	fs.Contains(out, "General Website Feedback")
	fs.Contains(out, "Saved successfully.")

	_, err := os.Stat(fs.cfg.Export.Path)
	fs.NoError(err)

	log, err := os.ReadFile(fs.logPath)
	fs.Require().NoError(err)
	fs.Contains(string(log), "COMMAND addform")
	fs.NotContains(string(log), "s3cr3t-pw", "command arguments are not logged")
}

func (fs *FeedbackSuite) TestUserFlow() {
	out := fs.run(
		"login user deepak 123",
		"submit 1 | deepak@example.com | Overall Experience=4 | nice site",
		"submit 1 | deepak@example.com",
		"forms",
	)

	fs.Contains(out, "Thank you!")
	fs.Contains(out, "You have already submitted feedback for this form.")
	fs.Contains(out, "1. General Website Feedback (submitted)")
}

func (fs *FeedbackSuite) TestRunStopsOnCancel() {
	pr, pw := io.Pipe()
	defer pw.Close()

	a, err := New(fs.cfg, pr, io.Discard)
	fs.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)

	go func() {
		errCh <- a.Run(ctx)
	}()

	cancel()

	select {
	case err := <-errCh:
		fs.NoError(err)
	case <-time.After(5 * time.Second):
		fs.Fail("run did not stop")
	}
}

func (fs *FeedbackSuite) TestDefaultSecretWarns() {
	cfg := fs.cfg
	cfg.Auth.Secret = config.DefaultSecret

	a, err := New(cfg, strings.NewReader(""), io.Discard)
	fs.Require().NoError(err)
	fs.Require().NoError(a.lg.Close())

	log, err := os.ReadFile(fs.logPath)
	fs.Require().NoError(err)
	fs.Contains(string(log), "built-in default secret")
}

func (fs *FeedbackSuite) TestConfiguredSecretDoesNotWarn() {
	logPath := filepath.Join(fs.T().TempDir(), "quiet.log")

	cfg := fs.cfg
	cfg.Logger.Output = []string{logPath}

	a, err := New(cfg, strings.NewReader(""), io.Discard)
	fs.Require().NoError(err)
	fs.Require().NoError(a.lg.Close())

	log, err := os.ReadFile(logPath)
	fs.Require().NoError(err)
	fs.NotContains(string(log), "built-in default secret")
}

func (fs *FeedbackSuite) TestBadLoggerConfig() {
	cfg := fs.cfg
	cfg.Logger.Level = "chatty"

	_, err := New(cfg, strings.NewReader(""), io.Discard)
	fs.Error(err)
}
