package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"xdao.co/plh/config"
	"xdao.co/plh/feed"
	"xdao.co/plh/internal/logging"
)

// Run starts the interactive shell with a freshly seeded demo feed and
// blocks until the user quits.
func Run(cfg config.Config) error {
	store := feed.NewStore(storeOptions(cfg)...)
	store.SeedDemo()

	logging.Debugf("starting shell (invisible_mode=%v)", cfg.InvisibleMode)
	p := tea.NewProgram(New(cfg, store), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func storeOptions(cfg config.Config) []feed.StoreOption {
	if cfg.TamperPolicy == config.TamperPolicyMutateMetadata {
		return []feed.StoreOption{feed.WithTamperPolicy(feed.TamperMutateMetadata)}
	}
	return nil
}
