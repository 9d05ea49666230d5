package job

import (
	"context"

	"github.com/sirupsen/logrus"

	"bookstore/internal/store"
	"bookstore/internal/taxonomy"
)

// OrphanSweeper is a periodic safety net behind the in-transaction
// reclaim that runs on bookmark deletion: it removes folders and tags
// that ended up unreferenced anyway, for example after an interrupted
// delete or a bookmark moved out of its old folder.
type OrphanSweeper struct {
	store    store.Store
	schedule string
}

// NewOrphanSweeper creates a sweeper with a cron schedule like "@every 10m".
func NewOrphanSweeper(store store.Store, schedule string) *OrphanSweeper {
	return &OrphanSweeper{
		store:    store,
		schedule: schedule,
	}
}

func (s *OrphanSweeper) Schedule() string {
	return s.schedule
}

func (s *OrphanSweeper) Run() {
	ctx := context.Background()

	owners, err := s.store.ListOwnerIDs(ctx)
	if err != nil {
		logrus.Errorf("orphan sweep: listing owners failed: %v", err)
		return
	}

	for _, ownerID := range owners {
		if err := s.Sweep(ctx, ownerID); err != nil {
			logrus.Errorf("orphan sweep for owner %s failed: %v", ownerID, err)
		}
	}
}

// Sweep reclaims one owner's dangling taxonomy entries. Running the
// reclaimer with an empty delete set yields exactly the folders whose
// subtrees hold no bookmarks and the tags no bookmark references.
func (s *OrphanSweeper) Sweep(ctx context.Context, ownerID string) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		folders, err := tx.ListFolders(ctx, ownerID)
		if err != nil {
			return err
		}
		tags, err := tx.ListTags(ctx, ownerID)
		if err != nil {
			return err
		}
		bookmarks, err := tx.ListBookmarks(ctx, ownerID)
		if err != nil {
			return err
		}

		reclaimed := taxonomy.NewReclaimer(folders, tags, bookmarks, nil).Reclaim(nil)
		if reclaimed.Empty() {
			return nil
		}

		logrus.Infof("orphan sweep: owner %s, removing %d folders and %d tags",
			ownerID, len(reclaimed.Folders), len(reclaimed.Tags))

		if err := tx.DeleteFolders(ctx, ownerID, reclaimed.FolderIDs()); err != nil {
			return err
		}
		return tx.DeleteTags(ctx, ownerID, reclaimed.TagIDs())
	})
}
