package dataservice

import (
	"fmt"
	"sync"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	fbm "github.com/Leopold1975/feedback_control/internal/feedback/repository/feedbackrepo/memory"
	fm "github.com/Leopold1975/feedback_control/internal/feedback/repository/formrepo/memory"
	um "github.com/Leopold1975/feedback_control/internal/feedback/repository/userrepo/memory"
	"github.com/Leopold1975/feedback_control/internal/pkg/config"
	"github.com/Leopold1975/feedback_control/internal/pkg/hasher"
	"github.com/Leopold1975/feedback_control/pkg/logger"
)

var (
	once     sync.Once
	instance *DataService
	errSetup error
)

// Setup builds and seeds the process-wide service on its first call. Later
// calls, and calls racing with the first, wait for it and get the same
// instance and error; their arguments are ignored.
func Setup(cfg config.Store, lg logger.Logger) (*DataService, error) {
	once.Do(func() {
		instance, errSetup = New(cfg, lg)
	})

	return instance, errSetup
}

// Instance returns the process-wide service, building it from
// config.DefaultStore if Setup was never called.
func Instance() *DataService {
	ds, err := Setup(config.DefaultStore(), logger.Nop())
	if err != nil {
		panic(fmt.Sprintf("data service setup error: %v", err))
	}

	return ds
}

// New builds an independent service with in-memory stores. An unusable hash
// algorithm is reported here so it can stop the process at startup.
func New(cfg config.Store, lg logger.Logger) (*DataService, error) {
	h, err := hasher.New(cfg.HashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("credential hasher error: %w", err)
	}

	ds := NewWithRepos(um.New(h), fm.New(), fbm.New(), lg)

	if cfg.DisableSeed {
		return ds, nil
	}

	if err := ds.seed(cfg); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	lg.Infof("data service ready: %d users, %d forms, digest %s",
		len(ds.GetUsers()), len(ds.GetForms()), h.Algorithm())

	return ds, nil
}

func (ds *DataService) seed(cfg config.Store) error {
	if !ds.AddUser(cfg.Admin.Username, cfg.Admin.Password, models.RoleAdmin) {
		return fmt.Errorf("duplicate seed user %q", cfg.Admin.Username)
	}

	for _, u := range cfg.Users {
		if !ds.AddUser(u.Username, u.Password, models.RoleUser) {
			return fmt.Errorf("duplicate seed user %q", u.Username)
		}
	}

	for _, f := range cfg.Forms {
		if _, err := ds.AddForm(f.Title, f.Description, f.Categories); err != nil {
			return fmt.Errorf("seed form %q error: %w", f.Title, err)
		}
	}

	return nil
}
