package localdir_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/localdir"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save then load round-trips", func(t *testing.T) {
		store, err := localdir.NewStore(t.TempDir())
		gt.NoError(t, err)

		gt.NoError(t, store.Save(ctx, "users_backup_20231027_100000.json", []byte(`[]`)))

		data, err := store.Load(ctx, "users_backup_20231027_100000.json")
		gt.NoError(t, err)
		gt.Equal(t, string(data), `[]`)
	})

	t.Run("missing file fails to load", func(t *testing.T) {
		store, err := localdir.NewStore(t.TempDir())
		gt.NoError(t, err)

		_, err = store.Load(ctx, "nope.json")
		gt.Error(t, err)
	})

	t.Run("empty file fails to load", func(t *testing.T) {
		store, err := localdir.NewStore(t.TempDir())
		gt.NoError(t, err)

		gt.NoError(t, store.Save(ctx, "users_backup_20231027_100000.json", nil))

		_, err = store.Load(ctx, "users_backup_20231027_100000.json")
		gt.Error(t, err)
	})

	t.Run("latest picks the newest timestamp", func(t *testing.T) {
		store, err := localdir.NewStore(t.TempDir())
		gt.NoError(t, err)

		gt.NoError(t, store.Save(ctx, "users_backup_20231026_090000.json", []byte(`[]`)))
		gt.NoError(t, store.Save(ctx, "users_backup_20231027_100000.json", []byte(`[]`)))
		gt.NoError(t, store.Save(ctx, "orders_backup_20231028_110000.json", []byte(`[]`)))

		name, err := store.Latest(ctx, "users")
		gt.NoError(t, err)
		gt.Equal(t, name, "users_backup_20231027_100000.json")
	})

	t.Run("latest fails when no backup exists", func(t *testing.T) {
		store, err := localdir.NewStore(t.TempDir())
		gt.NoError(t, err)

		_, err = store.Latest(ctx, "users")
		gt.Error(t, err)
	})

	t.Run("creates the directory when absent", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "backups")
		store, err := localdir.NewStore(dir)
		gt.NoError(t, err)

		gt.NoError(t, store.Save(ctx, "a_backup_20231027_100000.json", []byte(`[]`)))
	})
}
