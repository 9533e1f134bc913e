package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aqualog/internal/modules/tracker/domain"
	trackerout "aqualog/internal/modules/tracker/port/out"
	"aqualog/internal/platform/markdown"
)

// FileJournalStore writes one markdown note per archived day under
// journal/. Re-archiving a day rewrites its frontmatter but keeps any
// notes the user has added to the body.
type FileJournalStore struct {
	dir string
}

func NewFileJournalStore(dir string) trackerout.JournalStore {
	return &FileJournalStore{dir: dir}
}

func (s *FileJournalStore) WriteDay(_ context.Context, record domain.DailyRecord) (string, error) {
	notePath := filepath.Join(s.dir, string(record.DateKey)+".md")
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}

	body := ""
	if existing, err := os.ReadFile(notePath); err == nil {
		if _, existingBody, splitErr := markdown.SplitFrontmatter(string(existing)); splitErr == nil {
			body = existingBody
		}
	}
	if strings.TrimSpace(body) == "" {
		body = "## Notes\n"
	}

	rendered, err := markdown.RenderFrontmatter(toFrontmatter(record), body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(notePath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return notePath, nil
}

func toFrontmatter(record domain.DailyRecord) map[string]any {
	return map[string]any{
		"date":     string(record.DateKey),
		"intake":   record.TotalIntake,
		"goal":     record.Goal,
		"unit":     string(record.Unit),
		"goal_met": record.GoalMet(),
	}
}
