package core_test

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/yoda/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Watchable to test fallback/errors.
type MockRepository struct {
	files  map[string]string
	broken map[string]error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		files:  make(map[string]string),
		broken: make(map[string]error),
	}
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func (m *MockRepository) Append(ctx context.Context, relPath string, data string) error {
	if err, ok := m.broken[relPath]; ok {
		return err
	}
	m.files[relPath] += data
	return nil
}

func (m *MockRepository) Read(ctx context.Context, relPath string) (string, error) {
	if err, ok := m.broken[relPath]; ok {
		return "", err
	}
	content, ok := m.files[relPath]
	if !ok {
		return "", fs.ErrNotExist
	}
	return content, nil
}

func (m *MockRepository) Scan(ctx context.Context, req core.ScanRequest) ([]core.FileResult, error) {
	var paths []string
	for p := range m.files {
		if path.Ext(p) == ".md" {
			paths = append(paths, p)
		}
	}
	for p := range m.broken {
		paths = append(paths, p)
	}
	// Same order as the filesystem adapter
	slices.SortFunc(paths, core.ComparePaths)

	excluded := make(map[string]bool)
	for _, e := range req.Exclude {
		excluded[e] = true
	}

	var results []core.FileResult
	for _, p := range paths {
		if excluded[p] {
			continue
		}
		if err, ok := m.broken[p]; ok {
			results = append(results, core.FileResult{Path: p, Err: err})
			continue
		}
		res := core.FileResult{Path: p}
		for i, line := range strings.Split(strings.TrimSuffix(m.files[p], "\n"), "\n") {
			if req.Match(line) {
				res.Matches = append(res.Matches, core.Match{Path: p, Line: i + 1, Text: strings.TrimRight(line, " \t")})
			}
		}
		results = append(results, res)
	}
	return results, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var noon = time.Date(2024, 1, 1, 12, 30, 45, 0, time.Local)

func TestService_Append(t *testing.T) {
	t.Run("Formats Timestamped Entry", func(t *testing.T) {
		repo := NewMockRepository()
		service := core.NewService(repo, fixedClock(noon), nil)

		entry, err := service.Append(context.Background(), "buy milk")
		require.NoError(t, err)

		assert.Equal(t, "- [2024-01-01 12:30:45] buy milk", entry.String())
		assert.Equal(t, "- [2024-01-01 12:30:45] buy milk\n", repo.files[core.InboxName])
	})

	t.Run("Keeps Existing Entries", func(t *testing.T) {
		repo := NewMockRepository()
		repo.files[core.InboxName] = "- [2023-12-31 08:00:00] first\n"
		service := core.NewService(repo, fixedClock(noon), nil)

		_, err := service.Append(context.Background(), "second")
		require.NoError(t, err)

		assert.Equal(t, "- [2023-12-31 08:00:00] first\n- [2024-01-01 12:30:45] second\n", repo.files[core.InboxName])
	})

	t.Run("Empty Text Still Writes Entry", func(t *testing.T) {
		repo := NewMockRepository()
		service := core.NewService(repo, fixedClock(noon), nil)

		_, err := service.Append(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "- [2024-01-01 12:30:45] \n", repo.files[core.InboxName])
	})

	t.Run("Propagates Write Failure", func(t *testing.T) {
		repo := NewMockRepository()
		diskFull := errors.New("no space left on device")
		repo.broken[core.InboxName] = diskFull
		service := core.NewService(repo, fixedClock(noon), nil)

		_, err := service.Append(context.Background(), "lost")
		require.Error(t, err)
		assert.ErrorIs(t, err, diskFull)
	})
}

func TestService_Search(t *testing.T) {
	repo := NewMockRepository()
	repo.files["inbox.md"] = "- [2024-01-01 12:30:45] Buy MILK\n"
	repo.files["projects/garden.md"] = "# Garden\nwater the tomatoes\nmilk thistle  \n"
	repo.files["notes.txt"] = "milk in a text file\n"
	service := core.NewService(repo, fixedClock(noon), nil)
	ctx := context.Background()

	t.Run("Ignores Case", func(t *testing.T) {
		upper, err := service.Search(ctx, "MILK")
		require.NoError(t, err)
		lower, err := service.Search(ctx, "milk")
		require.NoError(t, err)

		assert.Equal(t, lower.Matches(), upper.Matches())
		assert.Equal(t, []core.Match{
			{Path: "inbox.md", Line: 1, Text: "- [2024-01-01 12:30:45] Buy MILK"},
			{Path: "projects/garden.md", Line: 3, Text: "milk thistle"},
		}, lower.Matches())
	})

	t.Run("Empty Query Matches Every Line", func(t *testing.T) {
		report, err := service.Search(ctx, "")
		require.NoError(t, err)
		assert.Len(t, report.Matches(), 4)
	})

	t.Run("No Matches", func(t *testing.T) {
		report, err := service.Search(ctx, "bread")
		require.NoError(t, err)
		assert.Empty(t, report.Matches())
		assert.Empty(t, report.Failures())
	})

	t.Run("Reports Skipped Files", func(t *testing.T) {
		broken := NewMockRepository()
		broken.files["a.md"] = "milk\n"
		broken.broken["b.md"] = core.ErrInvalidEncoding
		broken.files["c.md"] = "more milk\n"
		svc := core.NewService(broken, fixedClock(noon), nil)

		report, err := svc.Search(ctx, "milk")
		require.NoError(t, err)
		assert.Len(t, report.Matches(), 2)
		require.Len(t, report.Failures(), 1)
		assert.Equal(t, "b.md", report.Failures()[0].Path)
	})
}

func TestService_Today(t *testing.T) {
	ctx := context.Background()

	t.Run("Shows Log and Other Mentions", func(t *testing.T) {
		repo := NewMockRepository()
		repo.files["logs/2024-01-01.md"] = "hello\n2024-01-01 standup\n"
		repo.files["other.md"] = "2024-01-01 meeting\n"
		service := core.NewService(repo, fixedClock(noon), nil)

		report, err := service.Today(ctx)
		require.NoError(t, err)

		assert.Equal(t, "2024-01-01", report.Date)
		assert.True(t, report.HasLog())
		assert.Equal(t, "hello\n2024-01-01 standup\n", report.Log)
		assert.Equal(t, []core.Match{{Path: "other.md", Line: 1, Text: "2024-01-01 meeting"}}, report.Matches())
	})

	t.Run("Date Match Is Case Sensitive Literal", func(t *testing.T) {
		repo := NewMockRepository()
		repo.files["a.md"] = "on 2024-01-01\non 2024/01/01\n"
		service := core.NewService(repo, fixedClock(noon), nil)

		report, err := service.Today(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Match{{Path: "a.md", Line: 1, Text: "on 2024-01-01"}}, report.Matches())
	})

	t.Run("Whitespace Log Counts As Missing", func(t *testing.T) {
		repo := NewMockRepository()
		repo.files["logs/2024-01-01.md"] = " \n\t\n"
		service := core.NewService(repo, fixedClock(noon), nil)

		report, err := service.Today(ctx)
		require.NoError(t, err)
		assert.False(t, report.HasLog())
		assert.Nil(t, report.LogErr)
	})

	t.Run("Unreadable Log Is A Warning", func(t *testing.T) {
		repo := NewMockRepository()
		repo.broken["logs/2024-01-01.md"] = core.ErrInvalidEncoding
		service := core.NewService(repo, fixedClock(noon), nil)

		report, err := service.Today(ctx)
		require.NoError(t, err)
		assert.False(t, report.HasLog())
		require.Len(t, report.Failures(), 1)
		assert.Equal(t, "logs/2024-01-01.md", report.Failures()[0].Path)
	})
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := core.NewService(NewMockRepository(), nil, nil)

	_, err := service.Watch(context.Background())
	assert.ErrorIs(t, err, core.ErrNotWatchable)
}

func TestService_State(t *testing.T) {
	service := core.NewService(NewMockRepository(), fixedClock(noon), nil)

	state, ok := service.State().(core.ServiceState)
	require.True(t, ok)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.Equal(t, "2024-01-01", state.Today)
	assert.False(t, state.Watchable)
	assert.Equal(t, "service", service.ComponentType())
}
