package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/feedback/services/authservice"
	"github.com/Leopold1975/feedback_control/internal/pkg/config"
	"github.com/Leopold1975/feedback_control/pkg/logger"
)

var errQuit = errors.New("quit")

type Console struct {
	in         io.Reader
	out        io.Writer
	cfg        config.Console
	exportPath string

	dataService DataService
	authService AuthService
	lg          logger.Logger

	session  *authservice.Session
	commands map[string]command

	stop     chan struct{}
	stopOnce sync.Once
	finished chan struct{}
}

type DataService interface {
	GetUsers() []models.User
	AddUser(username, password string, role models.Role) bool
	DeleteUser(username string)
	UpdateUserPassword(username, newPassword string) bool
	AddForm(title, description string, categories []string) (models.Form, error)
	DeleteForm(form models.Form)
	GetForms() []models.Form
	SubmitFeedback(fb models.Feedback) error
	HasUserSubmittedForm(user models.User, form models.Form) bool
	GetFeedback() []models.Feedback
	GetFormFeedback(form models.Form, nameFilter string) []models.Feedback
	ClearAllFeedback()
}

type AuthService interface {
	Login(authservice.LoginRequest) (authservice.Session, error)
	Auth(token string) (models.User, error)
	RequireAdmin(token string) error
}

func New(cfg config.Console, exportPath string, in io.Reader, out io.Writer,
	ds DataService, as AuthService, lg logger.Logger,
) *Console {
	c := &Console{
		in:          in,
		out:         out,
		cfg:         cfg,
		exportPath:  exportPath,
		dataService: ds,
		authService: as,
		lg:          lg,
		stop:        make(chan struct{}),
		finished:    make(chan struct{}),
	}
	c.commands = c.routes()

	return c
}

// Start reads commands until input ends, "quit" is entered, ctx is done or
// Shutdown is called.
func (c *Console) Start(ctx context.Context) error {
	defer close(c.finished)
	defer c.stopOnce.Do(func() { close(c.stop) })

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		var err error

		defer func() {
			readErr <- err
			close(lines)
		}()

		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-c.stop:
				return
			case <-ctx.Done():
				return
			}
		}

		err = sc.Err()
	}()

	c.printf("Feedback console. Type \"help\" for commands.\n")
	c.prompt()

	for {
		select {
		case <-ctx.Done():
			if !errors.Is(ctx.Err(), context.Canceled) {
				return fmt.Errorf("context cancelled error: %w", ctx.Err())
			}

			return nil
		case <-c.stop:
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input error: %w", err)
				}

				return nil
			}

			if err := c.dispatch(line); errors.Is(err, errQuit) {
				return nil
			}

			c.prompt()
		}
	}
}

// Shutdown stops the command loop and waits for it to return.
func (c *Console) Shutdown(ctx context.Context) error {
	ctxS, cancel := context.WithTimeout(ctx, c.cfg.ShutdownTimeout)
	defer cancel()

	c.stopOnce.Do(func() { close(c.stop) })

	select {
	case <-ctxS.Done():
		return fmt.Errorf("shutdown console error: %w", ctxS.Err())
	case <-c.finished:
		return nil
	}
}

func (c *Console) dispatch(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name, rest, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)

	cmd, ok := c.commands[name]
	if !ok {
		c.printf("Unknown command %q. Type \"help\" for commands.\n", name)

		return nil
	}

	err := cmd(strings.TrimSpace(rest))
	if err != nil && !errors.Is(err, errQuit) {
		c.handleError(err)
	}

	return err
}

func (c *Console) prompt() {
	c.printf("%s", c.cfg.Prompt)
}

func (c *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.lg.Errorf("console write error: %s", err.Error())
	}
}
