package adapter

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/cts/internal/model"
)

func TestYAMLExpectationStore(t *testing.T) {
	store := NewYAMLExpectationStore()
	path := filepath.Join(t.TempDir(), "expectations.yaml")

	want := []m.QueryExpectation{
		{Query: "webgpu:api,buffer,*", Expectation: m.ExpectFail},
		{Query: "webgpu:shader,validation:f16:*", Expectation: m.ExpectSkip},
	}

	require.NoError(t, store.SaveExpectations(path, want))

	got, err := store.LoadExpectations(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestYAMLExpectationStore_Load(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []m.QueryExpectation
		wantErr bool
	}{
		{
			name:    "hand written",
			content: "expectations:\n  - query: s:a:*\n    expectation: pass\n",
			want:    []m.QueryExpectation{{Query: "s:a:*", Expectation: m.ExpectPass}},
		},
		{name: "empty file", content: "", want: nil},
		{name: "unknown expectation", content: "expectations:\n  - query: s:a:*\n    expectation: flaky\n", wantErr: true},
		{name: "not yaml", content: "expectations: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			writeFile(t, path, tt.content)

			got, err := NewYAMLExpectationStore().LoadExpectations(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYAMLExpectationStore_LoadMissing(t *testing.T) {
	store := NewYAMLExpectationStore()

	got, err := store.LoadExpectations("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = store.LoadExpectations(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
