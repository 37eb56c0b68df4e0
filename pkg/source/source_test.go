package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/cattree/pkg/category"
	errs "github.com/matzehuels/cattree/pkg/errors"
)

func TestStatic(t *testing.T) {
	cats := []category.Category{{ID: 1, Name: "Kitchen"}, {ID: 2, Name: "Garden"}}
	q := Static(cats)
	cats[0].Name = "changed"

	resp, err := q(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Kitchen", resp.Data[0].Name)

	resp.Data[1].Name = "changed"
	again, err := q(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Garden", again.Data[1].Name)
}

func TestStaticCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Static(nil)(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "cats.json")
	yamlPath := filepath.Join(dir, "cats.yml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"data":[{"id":1,"name":"Kitchen","Title":"1#"}]}`), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("- id: 1\n  name: Kitchen\n  Title: \"1#\"\n"), 0o644))

	for _, path := range []string{jsonPath, yamlPath} {
		resp, err := File(path)(context.Background())
		require.NoError(t, err, path)
		require.Len(t, resp.Data, 1, path)
		assert.Equal(t, "Kitchen", resp.Data[0].Name, path)
		assert.Equal(t, "1#", resp.Data[0].Title, path)
	}
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope.json"))(context.Background())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeNotFound))
}

func TestFileFeedsFromQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": 10, "name": "Garden", "Title": "2"},
		{"id": 20, "name": "Kitchen", "Title": "1"}
	]`), 0o644))

	nodes := category.FromQuery(context.Background(), File(path))
	require.Len(t, nodes, 2)
	assert.Equal(t, "Kitchen", nodes[0].Name)
	assert.Equal(t, "Garden", nodes[1].Name)
}

func TestFileMalformedDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cats.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data": [`), 0o644))

	nodes := category.FromQuery(context.Background(), File(path))
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestFileExampleCatalog(t *testing.T) {
	nodes := category.FromQuery(context.Background(), File("../../examples/categories.json"))
	require.Len(t, nodes, 6)

	var names, home []string
	for _, n := range nodes {
		names = append(names, n.Name)
		if n.ShowOnHome {
			home = append(home, n.Name)
		}
	}
	// Office's title is not a number, so it sorts by its id 6 and ties with
	// Lighting; the tie keeps input order.
	assert.Equal(t, []string{"Kitchen", "Garden", "Bath", "Lighting", "Office", "Misc"}, names)
	assert.Equal(t, []string{"Kitchen", "Garden"}, home)
}
