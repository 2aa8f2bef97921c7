package console

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/feedback/services/authservice"
	"github.com/Leopold1975/feedback_control/internal/feedback/services/dataservice"
	"github.com/Leopold1975/feedback_control/internal/feedback/services/exportservice"
)

func (c *Console) routes() map[string]command {
	handlers := map[string]command{
		"help":   c.help,
		"quit":   c.quit,
		"exit":   c.quit,
		"login":  c.login,
		"logout": c.logout,
		"forms":  c.listForms,
		"submit": c.submit,

		"users":    c.admin(c.listUsers),
		"adduser":  c.admin(c.addUser),
		"deluser":  c.admin(c.deleteUser),
		"passwd":   c.admin(c.updatePassword),
		"addform":  c.admin(c.addForm),
		"delform":  c.admin(c.deleteForm),
		"feedback": c.admin(c.formFeedback),
		"export":   c.admin(c.export),
		"clear":    c.admin(c.clearFeedback),
	}

	for name, h := range handlers {
		handlers[name] = loggingMiddleware(c.lg, name, c.currentUsername)(h)
	}

	return handlers
}

func (c *Console) admin(next command) command {
	return func(args string) error {
		if c.session == nil {
			return errLoginRequired
		}

		if err := c.authService.RequireAdmin(c.session.Token); err != nil {
			return fmt.Errorf("authorization error: %w", err)
		}

		return next(args)
	}
}

func (c *Console) currentUser() (models.User, error) {
	if c.session == nil {
		return models.User{}, errLoginRequired
	}

	u, err := c.authService.Auth(c.session.Token)
	if err != nil {
		return models.User{}, fmt.Errorf("authorization error: %w", err)
	}

	return u, nil
}

func (c *Console) currentUsername() string {
	if c.session == nil {
		return ""
	}

	return c.session.User.Username
}

func (c *Console) help(string) error {
	c.printf("%s", helpText)

	return nil
}

func (c *Console) quit(string) error {
	c.printf("Bye.\n")

	return errQuit
}

func (c *Console) login(args string) error {
	fields := strings.Fields(args)
	if len(fields) != 3 { //nolint:gomnd
		return usageError{"login <admin|user> <username> <password>"}
	}

	var role models.Role

	switch strings.ToLower(fields[0]) {
	case "admin":
		role = models.RoleAdmin
	case "user":
		role = models.RoleUser
	default:
		return usageError{"login <admin|user> <username> <password>"}
	}

	sess, err := c.authService.Login(authservice.LoginRequest{
		Username: fields[1],
		Password: fields[2],
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	c.session = &sess
	c.printf("Welcome, %s (%s).\n", sess.User.Username, sess.User.Role)

	return nil
}

func (c *Console) logout(string) error {
	c.session = nil
	c.printf("Logged out.\n")

	return nil
}

func (c *Console) listForms(string) error {
	forms := c.dataService.GetForms()
	if len(forms) == 0 {
		c.printf("No forms.\n")

		return nil
	}

	u, err := c.currentUser()
	loggedIn := err == nil

	for i, f := range forms {
		mark := ""
		if loggedIn && c.dataService.HasUserSubmittedForm(u, f) {
			mark = " (submitted)"
		}

		c.printf("%d. %s%s\n   %s\n   Categories: %s\n",
			i+1, f.Title, mark, f.Description, strings.Join(f.RatingCategories, ", "))
	}

	return nil
}

// submit rates every category of the form 5 unless the ratings part says
// otherwise.
func (c *Console) submit(args string) error {
	u, err := c.currentUser()
	if err != nil {
		return err
	}

	parts := splitPipe(args)
	if len(parts) < 2 || len(parts) > 4 { //nolint:gomnd
		return usageError{"submit <form#> | <email> [| <Category=n, ...> [| <comments>]]"}
	}

	form, err := c.formAt(parts[0])
	if err != nil {
		return err
	}

	ratings := make(map[string]int, len(form.RatingCategories))
	for _, cat := range form.RatingCategories {
		ratings[cat] = models.MaxRating
	}

	if len(parts) > 2 { //nolint:gomnd
		if err := parseRatings(parts[2], ratings); err != nil {
			return err
		}
	}

	var comments string
	if len(parts) > 3 { //nolint:gomnd
		comments = parts[3]
	}

	err = c.dataService.SubmitFeedback(models.Feedback{
		UserName:  u.Username,
		UserEmail: parts[1],
		Ratings:   ratings,
		Comments:  comments,
		FormID:    form.ID,
		FormTitle: form.Title,
	})
	if err != nil {
		return fmt.Errorf("submit error: %w", err)
	}

	c.printf("%s\n", msgThanks)

	return nil
}

func (c *Console) listUsers(string) error {
	for _, u := range c.dataService.GetUsers() {
		c.printf("%-20s %s\n", u.Username, u.Role)
	}

	return nil
}

func (c *Console) addUser(args string) error {
	fields := strings.Fields(args)
	if len(fields) != 3 { //nolint:gomnd
		return usageError{"adduser <username> <password> <ADMIN|USER>"}
	}

	role := models.Role(strings.ToUpper(fields[2]))
	if role != models.RoleAdmin && role != models.RoleUser {
		return usageError{"adduser <username> <password> <ADMIN|USER>"}
	}

	if !c.dataService.AddUser(fields[0], fields[1], role) {
		return errUserExists
	}

	c.printf("User %s added.\n", fields[0])

	return nil
}

func (c *Console) deleteUser(args string) error {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return usageError{"deluser <username>"}
	}

	c.dataService.DeleteUser(fields[0])
	c.printf("User %s deleted.\n", fields[0])

	return nil
}

func (c *Console) updatePassword(args string) error {
	username, password, ok := strings.Cut(args, " ")
	password = strings.TrimSpace(password)

	if !ok || username == "" || password == "" {
		return usageError{"passwd <username> <new password>"}
	}

	if !c.dataService.UpdateUserPassword(username, password) {
		return errNoSuchUser
	}

	c.printf("Password updated for %s.\n", username)

	return nil
}

func (c *Console) addForm(args string) error {
	parts := splitPipe(args)
	if len(parts) != 3 || parts[0] == "" { //nolint:gomnd
		return usageError{"addform <title> | <description> | <category, category, ...>"}
	}

	f, err := c.dataService.AddForm(parts[0], parts[1], strings.Split(parts[2], ","))
	if err != nil {
		return fmt.Errorf("add form error: %w", err)
	}

	c.printf("Form %q created.\n", f.Title)

	return nil
}

func (c *Console) deleteForm(args string) error {
	form, err := c.formAt(args)
	if err != nil {
		return err
	}

	c.dataService.DeleteForm(form)
	c.printf("Form %q deleted.\n", form.Title)

	return nil
}

func (c *Console) formFeedback(args string) error {
	idx, filter, _ := strings.Cut(args, " ")

	form, err := c.formAt(idx)
	if err != nil {
		return err
	}

	records := c.dataService.GetFormFeedback(form, strings.TrimSpace(filter))
	if len(records) == 0 {
		c.printf("%s\n", msgNoFeedback)

		return nil
	}

	c.printf("Feedback for: %s\n", form.Title)

	for _, fb := range records {
		c.printf("%s | %s | %s | %s\n", fb.UserName, fb.UserEmail, formatRatings(fb.Ratings), fb.Comments)
	}

	return nil
}

func (c *Console) export(args string) error {
	path := args
	if path == "" {
		path = c.exportPath
	}

	if err := exportservice.WriteFile(path, c.dataService.GetFeedback()); err != nil {
		return fmt.Errorf("export error: %w", err)
	}

	c.printf("%s\n", msgSaved)

	return nil
}

func (c *Console) clearFeedback(string) error {
	c.dataService.ClearAllFeedback()
	c.printf("%s\n", msgCleared)

	return nil
}

// formAt resolves a 1-based position in the current form list.
func (c *Console) formAt(s string) (models.Form, error) {
	forms := c.dataService.GetForms()

	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 || i > len(forms) {
		return models.Form{}, dataservice.ErrFormNotFound
	}

	return forms[i-1], nil
}

func parseRatings(s string, ratings map[string]int) error {
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		cat, val, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not Category=n", models.ErrInvalidRating, pair)
		}

		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", models.ErrInvalidRating, val)
		}

		ratings[strings.TrimSpace(cat)] = n
	}

	return nil
}

func formatRatings(ratings map[string]int) string {
	cats := make([]string, 0, len(ratings))
	for cat := range ratings {
		cats = append(cats, cat)
	}

	slices.Sort(cats)

	var sb strings.Builder

	for _, cat := range cats {
		fmt.Fprintf(&sb, "%s:%d ", cat, ratings[cat])
	}

	return strings.TrimSpace(sb.String())
}

func splitPipe(s string) []string {
	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
