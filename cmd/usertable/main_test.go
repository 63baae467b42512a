package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-dashboard/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_DB_DRIVER", "memory")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestFlagsState(t *testing.T) {
	f := flags{status: "all", sort: "email", dir: "asc", page: 1, toggle: "email"}
	q, err := f.state()
	require.NoError(t, err)
	assert.Equal(t, domain.SortEmail, q.SortField)
	assert.Equal(t, domain.Desc, q.SortDir)

	for _, bad := range []flags{
		{status: "banned", sort: "email", dir: "asc", page: 1},
		{status: "all", sort: "password", dir: "asc", page: 1},
		{status: "all", sort: "email", dir: "up", page: 1},
		{status: "all", sort: "email", dir: "asc", page: 0},
		{status: "all", sort: "email", dir: "asc", page: 1, size: -1},
		{status: "all", sort: "email", dir: "asc", page: 1, toggle: "id"},
	} {
		_, err := bad.state()
		assert.Error(t, err, "%+v", bad)
	}
}

func TestRun_DefaultTable(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[0], "NAME ↑")
	assert.Contains(t, lines[1], "Amanda Anderson")
	assert.Contains(t, lines[1], "San Jose, CA")
	assert.Contains(t, out, "Showing 1 to 5 of 10 results (page 1 of 2)")
}

func TestRun_ActiveSecondPage(t *testing.T) {
	out, err := execute(t, "--status", "active", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Lisa Davis")
	assert.Contains(t, out, "Showing 6 to 6 of 6 results")
}

func TestRun_NoMatchAndOutOfRange(t *testing.T) {
	out, err := execute(t, "-q", "nobody")
	require.NoError(t, err)
	assert.Equal(t, "No users found.\n", out)

	out, err = execute(t, "--page", "9")
	require.NoError(t, err)
	assert.Equal(t, "Page 9 is out of range (2 pages).\n", out)
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "--json", "--sort", "joinDate", "--toggle", "joinDate", "--size", "3")
	require.NoError(t, err)

	var got struct {
		Query domain.QueryState `json:"query"`
		Items []domain.User     `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.Desc, got.Query.SortDir)
	require.Len(t, got.Items, 3)
	assert.Equal(t, []int{4, 9, 10}, []int{got.Items[0].ID, got.Items[1].ID, got.Items[2].ID})
}

func TestRun_InvalidFlag(t *testing.T) {
	_, err := execute(t, "--dir", "sideways")
	assert.Error(t, err)
}
