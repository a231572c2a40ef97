package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the bridge tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.ProgramState{},
		&schema.NFTOrigin{},
		&schema.ConnectedContract{},
		&schema.LocalUnit{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = time.Hour
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return nil
}

// WithTx runs fn inside a database transaction
func (s *pgStore) WithTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// GetProgramState retrieves the singleton program state
func (s *pgStore) GetProgramState(ctx context.Context) (*schema.ProgramState, error) {
	var state schema.ProgramState
	err := s.db.WithContext(ctx).Where("id = ?", schema.ProgramStateID).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get program state: %w", err)
	}
	return &state, nil
}

// InitProgramState creates the singleton program state row
func (s *pgStore) InitProgramState(ctx context.Context, state *schema.ProgramState) error {
	state.ID = schema.ProgramStateID

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(state)
	if result.Error != nil {
		return fmt.Errorf("failed to init program state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenAlreadyExists
	}

	return nil
}

// SaveProgramState persists admin mutations to the program state
func (s *pgStore) SaveProgramState(ctx context.Context, state *schema.ProgramState) error {
	state.ID = schema.ProgramStateID
	state.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(state).Error; err != nil {
		return fmt.Errorf("failed to save program state: %w", err)
	}

	return nil
}

// BumpNextTokenID atomically advances the mint counter
func (s *pgStore) BumpNextTokenID(ctx context.Context, expected uint64) error {
	result := s.db.WithContext(ctx).Model(&schema.ProgramState{}).
		Where("id = ? AND next_token_id = ?", schema.ProgramStateID, expected).
		Updates(map[string]interface{}{
			"next_token_id": gorm.Expr("next_token_id + 1"),
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to bump next token id: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNextTokenIdMismatch
	}

	return nil
}

// CreateOrigin records where a token was first minted
func (s *pgStore) CreateOrigin(ctx context.Context, origin *schema.NFTOrigin) error {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_id"}},
		DoNothing: true,
	}).Create(origin)
	if result.Error != nil {
		return fmt.Errorf("failed to create origin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenAlreadyExists
	}

	return nil
}

// GetOrigin retrieves a token's origin record
func (s *pgStore) GetOrigin(ctx context.Context, tokenID uint64) (*schema.NFTOrigin, error) {
	var origin schema.NFTOrigin
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&origin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get origin: %w", err)
	}
	return &origin, nil
}

// EnsureOrigin records an origin for a token arriving from another chain.
// The first write wins so a token's origin never changes once recorded.
func (s *pgStore) EnsureOrigin(ctx context.Context, origin *schema.NFTOrigin) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_id"}},
		DoNothing: true,
	}).Create(origin).Error
	if err != nil {
		return fmt.Errorf("failed to ensure origin: %w", err)
	}

	return nil
}

// GetConnectedContract retrieves the authorized counterpart contract for a gas token
func (s *pgStore) GetConnectedContract(ctx context.Context, zrc20 string) (*schema.ConnectedContract, error) {
	var contract schema.ConnectedContract
	err := s.db.WithContext(ctx).Where("zrc20 = ?", zrc20).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get connected contract: %w", err)
	}
	return &contract, nil
}

// SetConnectedContract creates or replaces the counterpart contract mapping
func (s *pgStore) SetConnectedContract(ctx context.Context, contract *schema.ConnectedContract) error {
	contract.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "zrc20"}},
		DoUpdates: clause.AssignmentColumns([]string{"address", "updated_at"}),
	}).Create(contract).Error
	if err != nil {
		return fmt.Errorf("failed to set connected contract: %w", err)
	}

	return nil
}

// CreateUnit records a token now alive on this chain
func (s *pgStore) CreateUnit(ctx context.Context, unit *schema.LocalUnit) error {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_id"}},
		DoNothing: true,
	}).Create(unit)
	if result.Error != nil {
		return fmt.Errorf("failed to create unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenAlreadyExists
	}

	return nil
}

// GetUnit retrieves a live token by id
func (s *pgStore) GetUnit(ctx context.Context, tokenID uint64) (*schema.LocalUnit, error) {
	var unit schema.LocalUnit
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	return &unit, nil
}

// DeleteUnit removes a token burned for an outbound transfer
func (s *pgStore) DeleteUnit(ctx context.Context, tokenID uint64) error {
	result := s.db.WithContext(ctx).Where("token_id = ?", tokenID).Delete(&schema.LocalUnit{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNFTOriginNotFound
	}

	return nil
}
