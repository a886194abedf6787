package profile

import (
	"context"
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Repository stores named store connections on the local machine.
type Repository interface {
	Save(ctx context.Context, name, siteURL, consumerKey, consumerSecret string) (*ConnectionProfile, error)
	Get(ctx context.Context, name string) (*ConnectionProfile, error)
	List(ctx context.Context) ([]ConnectionProfile, error)
	Delete(ctx context.Context, name string) error
	Secret(p *ConnectionProfile) (string, error)
}

type store struct {
	db *gorm.DB
	kb *keybox
}

// Open opens (or creates) the profile database at path and ensures the
// schema and the sealing key exist. The key lives next to the database.
func Open(path string) (Repository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&ConnectionProfile{}); err != nil {
		return nil, err
	}

	kb, err := loadKeybox(path + ".key")
	if err != nil {
		return nil, err
	}
	return &store{db: db, kb: kb}, nil
}

func (s *store) Save(ctx context.Context, name, siteURL, consumerKey, consumerSecret string) (*ConnectionProfile, error) {
	var existing ConnectionProfile
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sealed, err := s.kb.seal(consumerSecret)
	if err != nil {
		return nil, err
	}
	p := &ConnectionProfile{
		Name:         name,
		SiteURL:      siteURL,
		ConsumerKey:  consumerKey,
		SecretSealed: sealed,
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *store) Get(ctx context.Context, name string) (*ConnectionProfile, error) {
	var p ConnectionProfile
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *store) List(ctx context.Context) ([]ConnectionProfile, error) {
	var profiles []ConnectionProfile
	if err := s.db.WithContext(ctx).Order("name").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *store) Delete(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).Where("name = ?", name).Delete(&ConnectionProfile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Secret unseals the stored consumer secret.
func (s *store) Secret(p *ConnectionProfile) (string, error) {
	return s.kb.open(p.SecretSealed)
}
