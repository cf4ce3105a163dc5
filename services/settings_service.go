package services

import (
	"errors"
	"sync"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"gorm.io/gorm"
)

// DefaultMaxCapacity applies when no settings record exists yet.
const DefaultMaxCapacity = 50

// SettingsService serves the single mutable configuration record.
// The record is cached; Invalidate must be called after an admin edit.
type SettingsService struct {
	db     *gorm.DB
	mu     sync.RWMutex
	cached *models.Setting
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the settings record, loading it on first use. A missing
// row yields defaults rather than an error.
func (s *SettingsService) Get() (*models.Setting, error) {
	s.mu.RLock()
	if s.cached != nil {
		defer s.mu.RUnlock()
		return s.cached, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}

	var setting models.Setting
	if err := s.db.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.cached = &models.Setting{
				MaxTableCapacity:        DefaultMaxCapacity,
				CancellationWindowHours: 24,
			}
			return s.cached, nil
		}
		return nil, err
	}
	if setting.MaxTableCapacity <= 0 {
		setting.MaxTableCapacity = DefaultMaxCapacity
	}
	s.cached = &setting
	return s.cached, nil
}

// MaxCapacity returns the guest ceiling for a reservation slot.
func (s *SettingsService) MaxCapacity() (int, error) {
	setting, err := s.Get()
	if err != nil {
		return 0, err
	}
	return setting.MaxTableCapacity, nil
}

// Update persists changes to the settings record and drops the cache.
func (s *SettingsService) Update(setting *models.Setting) error {
	if err := s.db.Save(setting).Error; err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// Invalidate drops the cached record so the next read hits the DB.
func (s *SettingsService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}
