package exportservice

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
)

const delimiter = "---------------------------------"

// Write renders records as human readable blocks, one per record, in the
// order given. Ratings are listed by category name.
func Write(w io.Writer, records []models.Feedback) error {
	bw := bufio.NewWriter(w)

	for _, fb := range records {
		if _, err := bw.WriteString(Format(fb)); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush error: %w", err)
	}

	return nil
}

func WriteFile(path string, records []models.Feedback) (err error) { //nolint:nonamedreturns
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file error: %w", err)
	}

	defer func() {
		if errC := f.Close(); errC != nil && err == nil {
			err = fmt.Errorf("close file error: %w", errC)
		}
	}()

	return Write(f, records)
}

func Format(fb models.Feedback) string {
	var sb strings.Builder

	sb.WriteString(delimiter + "\n")
	fmt.Fprintf(&sb, " Form: %s\n", fb.FormTitle)
	fmt.Fprintf(&sb, " Name: %s\n", fb.UserName)
	fmt.Fprintf(&sb, " Email: %s\n", fb.UserEmail)

	categories := make([]string, 0, len(fb.Ratings))
	for c := range fb.Ratings {
		categories = append(categories, c)
	}

	slices.Sort(categories)

	for _, c := range categories {
		fmt.Fprintf(&sb, " Rating (%s): %d / %d\n", c, fb.Ratings[c], models.MaxRating)
	}

	fmt.Fprintf(&sb, " Comments: %s\n", fb.Comments)
	sb.WriteString(delimiter + "\n\n")

	return sb.String()
}
