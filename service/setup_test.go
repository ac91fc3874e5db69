package service

import (
	"AppNotas/config"
	"AppNotas/dao"
	"AppNotas/pkg/database"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	cfg      *config.Config
	users    *UserService
	category *CategoryService
	notes    *NoteService
	images   *LocalImageStore
}

// newTestEnv 每个用例一个独立的 sqlite 文件库，已建表并写入系统分类
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg, err := config.Parse([]byte(`
app:
  env: test
  password_cost: 4
database:
  driver: sqlite
jwt:
  secret: test-secret
`))
	require.NoError(t, err)
	dir := t.TempDir()
	cfg.Database.Driver = config.DriverSqlite
	cfg.Database.Dsn = filepath.Join(dir, "test.db")
	cfg.Jwt.Secret = "test-secret"
	cfg.Storage.UploadDir = filepath.Join(dir, "uploads")

	db, cleanup, err := database.NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	require.NoError(t, database.Migrate(context.Background(), db))

	categoryDAO := dao.NewCategoryDAO(db)
	images := &LocalImageStore{Root: cfg.Storage.UploadDir}
	return &testEnv{
		db:       db,
		cfg:      cfg,
		users:    &UserService{Config: cfg, UsersRepo: dao.NewUsers(db)},
		category: &CategoryService{CategoryDAO: categoryDAO},
		notes: &NoteService{
			NoteDAO:     dao.NewNoteDAO(db),
			CategoryDAO: categoryDAO,
			ImageStore:  images,
		},
		images: images,
	}
}

// register 注册并返回用户 ID
func (e *testEnv) register(t *testing.T, email string) uint64 {
	t.Helper()
	_, user, err := e.users.Register(context.Background(), email, "secret1")
	require.NoError(t, err)
	return user.ID
}
