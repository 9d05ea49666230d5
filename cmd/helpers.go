package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bookstore/internal/cache"
	"bookstore/internal/compress"
	"bookstore/internal/config"
	"bookstore/internal/service"
	"bookstore/internal/store"
)

func checkMissingFlags(cmd *cobra.Command, required []string) bool {
	var missing []string
	for _, name := range required {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}

	if len(missing) > 0 {
		color.Red("missing: %s", strings.Join(missing, ", "))
		return true
	}

	return false
}

func newStore() *store.GormStore {
	cnf := config.LoadConfig()
	gormStore := store.NewGormStore(config.GetDb(cnf))
	if err := gormStore.Migrate(); err != nil {
		panic(err)
	}

	return gormStore
}

func newService() *service.BookmarkService {
	cnf := config.LoadConfig()

	gormStore := store.NewGormStore(config.GetDb(cnf))
	if err := gormStore.Migrate(); err != nil {
		panic(err)
	}

	var textCache cache.ArchiveTextCache
	if cnf.RedisAddr != "" {
		textCache = cache.NewRedisArchiveCache(cnf.RedisAddr)
	} else {
		textCache = cache.NewMemoryArchiveCache()
	}

	return service.NewBookmarkService(compress.NewGZip(), gormStore, textCache)
}
