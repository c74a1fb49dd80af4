package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	app := InitApp(out, errOut)
	err := app.Run(context.Background(), append([]string{"tablediff"}, args...))
	return out.String(), err
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestCompareOrdered(t *testing.T) {
	t.Setenv("TABLEDIFF_CFG_FILE", "")

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "identical",
			args: []string{testdata("expected.feature"), testdata("expected.feature")},
			want: "The tables are identical.\n",
		},
		{
			name: "changed row",
			args: []string{testdata("expected.feature"), testdata("actual.feature")},
			want: "  | name   | qty |\n" +
				"  | apples | 1   |\n" +
				"- | pears  | 2   |\n" +
				"+ | figs   | 2   |\n" +
				"  | plums  | 3   |\n",
			wantErr: ErrTablesDiffer,
		},
		{
			name: "changed row with difflib and stats",
			args: []string{"--matcher", "difflib", "-s", testdata("expected.feature"), testdata("actual.feature")},
			want: "  | name   | qty |\n" +
				"  | apples | 1   |\n" +
				"- | pears  | 2   |\n" +
				"+ | figs   | 2   |\n" +
				"  | plums  | 3   |\n" +
				"3 of 4 rows unchanged (75%). 1 deleted, 1 inserted (0 rows net).\n",
			wantErr: ErrTablesDiffer,
		},
		{
			name: "unordered across formats",
			args: []string{"-u", testdata("expected.feature"), testdata("shuffled.csv")},
			want: "The tables are identical.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got error: %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareJSON(t *testing.T) {
	t.Setenv("TABLEDIFF_CFG_FILE", "")

	got, err := run(t, "-o", "json", "--stats", testdata("expected.feature"), testdata("actual.feature"))
	assert.True(t, errors.Is(err, ErrTablesDiffer))

	var r struct {
		Different bool           `json:"different"`
		Diff      [][]any        `json:"diff"`
		Stats     map[string]int `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &r))
	assert.True(t, r.Different)
	assert.Len(t, r.Diff, 5)
	assert.Equal(t, "-", r.Diff[2][0])
	assert.Equal(t, 1, r.Stats["inserts"])
	assert.Equal(t, 3, r.Stats["unchanged"])
}

func TestCompareConfigFile(t *testing.T) {
	t.Setenv("TABLEDIFF_CFG_FILE", testdata("config.yaml"))

	got, err := run(t, testdata("expected.feature"), testdata("shuffled.csv"))
	require.NoError(t, err)
	assert.Equal(t, "The tables are identical.\n4 of 4 rows unchanged (100%). 0 deleted, 0 inserted (0 rows net).\n", got)
}

func TestCompareEnv(t *testing.T) {
	t.Setenv("TABLEDIFF_CFG_FILE", "")
	t.Setenv("TABLEDIFF_UNORDERED", "true")

	_, err := run(t, testdata("expected.feature"), testdata("shuffled.csv"))
	assert.NoError(t, err)
}

func TestCompareErrors(t *testing.T) {
	t.Setenv("TABLEDIFF_CFG_FILE", "")

	_, err := run(t, testdata("expected.feature"))
	assert.True(t, errors.Is(err, ErrUsage))

	_, err = run(t, testdata("expected.feature"), testdata("missing.feature"))
	assert.Error(t, err)

	_, err = run(t, "--matcher", "myers", testdata("expected.feature"), testdata("actual.feature"))
	assert.Error(t, err)

	_, err = run(t, "--format", "xlsx", testdata("expected.feature"), testdata("actual.feature"))
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	errW := &bytes.Buffer{}
	assert.Equal(t, ExitMatch, ExitCode(nil, errW))
	assert.Equal(t, ExitMismatch, ExitCode(ErrTablesDiffer, errW))
	assert.Empty(t, errW.String())

	assert.Equal(t, ExitError, ExitCode(errors.New("boom"), errW))
	assert.Equal(t, "tablediff: boom\n", errW.String())
}
