package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"gitignore/internal/cachestore"
	"gitignore/internal/catalog"
	"gitignore/internal/logging"
	"gitignore/internal/resolve"
	"gitignore/internal/userconfig"
)

// staleAfter is how old a cached catalog may grow before list and get start
// nudging the user toward `git-ignore update`.
const staleAfter = 30 * 24 * time.Hour

type commandContext struct {
	configFlag   *string
	cacheFlag    *string
	serverFlag   *string
	logLevelFlag *string

	storesOnce sync.Once
	logger     *slog.Logger
	cache      *cachestore.Store
	user       *userconfig.Config
	storesErr  error

	// refreshErr remembers a failed implicit refresh so get can report the
	// transport problem instead of a misleading unknown-template error.
	refreshErr error
}

func newCommandContext(configFlag, cacheFlag, serverFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		cacheFlag:    cacheFlag,
		serverFlag:   serverFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) userConfigPath() (string, error) {
	if path := strings.TrimSpace(*c.configFlag); path != "" {
		return path, nil
	}
	return defaultConfigPath()
}

func (c *commandContext) cachePath() (string, error) {
	if path := strings.TrimSpace(*c.cacheFlag); path != "" {
		return path, nil
	}
	return defaultCachePath()
}

// ensureStores loads the cache store and user config exactly once. Unreadable
// files degrade to empty stores with a warning; only path resolution failures
// abort the command.
func (c *commandContext) ensureStores(cmd *cobra.Command) error {
	c.storesOnce.Do(func() {
		logger, err := logging.New(logging.Options{
			Level:  *c.logLevelFlag,
			Output: cmd.ErrOrStderr(),
		})
		if err != nil {
			c.storesErr = err
			return
		}
		c.logger = logger

		client, err := catalog.New(catalog.Config{BaseURL: *c.serverFlag})
		if err != nil {
			c.storesErr = err
			return
		}

		cachePath, err := c.cachePath()
		if err != nil {
			c.storesErr = err
			return
		}
		store, err := cachestore.Open(cachePath, client, logger)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring template cache: %v\n", err)
		}
		c.cache = store

		configPath, err := c.userConfigPath()
		if err != nil {
			c.storesErr = err
			return
		}
		user, err := userconfig.Load(configPath, logger)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring user config: %v\n", err)
		}
		c.user = user
	})
	return c.storesErr
}

func (c *commandContext) resolver(cmd *cobra.Command) (*resolve.Resolver, error) {
	if err := c.ensureStores(cmd); err != nil {
		return nil, err
	}
	return resolve.New(c.cache, c.user), nil
}

// primeCatalog refreshes an empty cache before first use and warns when the
// cached catalog is stale or unreachable. Refresh failures degrade to the
// cached state; they never abort listing.
func (c *commandContext) primeCatalog(ctx context.Context, cmd *cobra.Command) error {
	if err := c.ensureStores(cmd); err != nil {
		return err
	}
	if c.cache.Len() == 0 {
		if err := c.cache.Refresh(ctx); err != nil {
			c.refreshErr = err
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not fetch template catalog: %v\n", err)
		}
		return nil
	}
	if age := time.Since(c.cache.FetchedAt()); age > staleAfter {
		fmt.Fprintf(cmd.ErrOrStderr(),
			"warning: template catalog is %d days old; run `git-ignore update`\n",
			int(age.Hours()/24))
	}
	return nil
}

func defaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "git-ignore", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "git-ignore", "config.toml"), nil
}

func defaultCachePath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "git-ignore", "ignore.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "git-ignore", "ignore.json"), nil
}
