package job

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"bookstore/internal/compress"
	"bookstore/internal/model"
	"bookstore/internal/service"
	"bookstore/internal/store"
	"bookstore/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup()
	code := m.Run()

	os.Exit(code)
}

func TestOrphanSweeper_Sweep(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := store.NewGormStore(tester.TestDB())
	client := service.NewBookmarkService(compress.NewNop(), gormStore, tester.Cache())
	ownerID := uuid.New().String()

	_, err := client.AddBookmark(context.TODO(), &service.AddBookmarkRequest{
		OwnerID: ownerID,
		URL:     "https://example.com",
		Folder:  "Dev/Go",
		Tags:    []string{"go"},
	})
	assert.NoError(t, err)

	// simulate leftovers from an interrupted operation
	orphanFolder := &model.Folder{ID: uuid.New().String(), OwnerID: ownerID, Name: "Stale"}
	assert.NoError(t, gormStore.CreateFolder(context.TODO(), orphanFolder))
	orphanTag := &model.Tag{ID: uuid.New().String(), OwnerID: ownerID, Name: "stale"}
	assert.NoError(t, gormStore.CreateTag(context.TODO(), orphanTag))

	sweeper := NewOrphanSweeper(gormStore, "@every 10m")
	assert.Equal(t, "@every 10m", sweeper.Schedule())
	assert.NoError(t, sweeper.Sweep(context.TODO(), ownerID))

	folders, err := gormStore.ListFolders(context.TODO(), ownerID)
	assert.NoError(t, err)
	assert.Len(t, folders, 2)
	for _, folder := range folders {
		assert.NotEqual(t, "Stale", folder.Name)
	}

	tags, err := gormStore.ListTags(context.TODO(), ownerID)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, "go", tags[0].Name)
}

func TestOrphanSweeper_RunCoversAllOwners(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	gormStore := store.NewGormStore(tester.TestDB())
	owner1 := uuid.New().String()
	owner2 := uuid.New().String()

	for _, ownerID := range []string{owner1, owner2} {
		folder := &model.Folder{ID: uuid.New().String(), OwnerID: ownerID, Name: "Stale"}
		assert.NoError(t, gormStore.CreateFolder(context.TODO(), folder))
	}

	NewOrphanSweeper(gormStore, "@hourly").Run()

	for _, ownerID := range []string{owner1, owner2} {
		folders, err := gormStore.ListFolders(context.TODO(), ownerID)
		assert.NoError(t, err)
		assert.Empty(t, folders)
	}
}
