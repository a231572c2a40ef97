package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	if err := Migrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	code := m.Run()

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// resetTables truncates all bridge tables between tests
func resetTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"program_state", "nft_origins", "connected_contracts", "local_units"} {
		require.NoError(t, testDB.Exec("TRUNCATE TABLE "+table).Error)
	}
}

func newProgramState() *schema.ProgramState {
	return &schema.ProgramState{
		Owner:       "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		Gateway:     "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		NextTokenID: 0,
		GasLimit:    500_000,
	}
}

func TestProgramStateLifecycle(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	// uninitialized program reads as nil
	state, err := s.GetProgramState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)

	require.NoError(t, s.InitProgramState(ctx, newProgramState()))

	// double init is rejected
	err = s.InitProgramState(ctx, newProgramState())
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)

	state, err = s.GetProgramState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, uint64(0), state.NextTokenID)
	assert.False(t, state.Paused)

	state.Paused = true
	require.NoError(t, s.SaveProgramState(ctx, state))

	state, err = s.GetProgramState(ctx)
	require.NoError(t, err)
	assert.True(t, state.Paused)
}

func TestBumpNextTokenID(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	require.NoError(t, s.InitProgramState(ctx, newProgramState()))

	require.NoError(t, s.BumpNextTokenID(ctx, 0))
	require.NoError(t, s.BumpNextTokenID(ctx, 1))

	// a stale expected counter no longer matches
	err := s.BumpNextTokenID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNextTokenIdMismatch)

	state, err := s.GetProgramState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), state.NextTokenID)
}

func TestOrigins(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	origin, err := s.GetOrigin(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, origin)

	require.NoError(t, s.CreateOrigin(ctx, &schema.NFTOrigin{
		TokenID:       42,
		OriginChain:   uint64(domain.ChainSolanaDevnet),
		OriginTokenID: 42,
		URI:           "ipfs://original",
		Mint:          "mint-1",
	}))

	err = s.CreateOrigin(ctx, &schema.NFTOrigin{TokenID: 42, URI: "ipfs://other"})
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)

	// EnsureOrigin never overwrites an existing record
	require.NoError(t, s.EnsureOrigin(ctx, &schema.NFTOrigin{
		TokenID:       42,
		OriginChain:   uint64(domain.ChainEthereumMainnet),
		OriginTokenID: 7,
		URI:           "ipfs://late-arrival",
		Mint:          "mint-2",
	}))

	origin, err = s.GetOrigin(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, origin)
	assert.Equal(t, uint64(domain.ChainSolanaDevnet), origin.OriginChain)
	assert.Equal(t, "ipfs://original", origin.URI)
}

func TestConnectedContracts(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	zrc20 := "0x5555555555555555555555555555555555555555"

	contract, err := s.GetConnectedContract(ctx, zrc20)
	require.NoError(t, err)
	assert.Nil(t, contract)

	require.NoError(t, s.SetConnectedContract(ctx, &schema.ConnectedContract{
		ZRC20:   zrc20,
		Address: "0x1111111111111111111111111111111111111111",
	}))

	// setting again replaces the address
	require.NoError(t, s.SetConnectedContract(ctx, &schema.ConnectedContract{
		ZRC20:   zrc20,
		Address: "0x2222222222222222222222222222222222222222",
	}))

	contract, err = s.GetConnectedContract(ctx, zrc20)
	require.NoError(t, err)
	require.NotNil(t, contract)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", contract.Address)
}

func TestUnits(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	require.NoError(t, s.CreateUnit(ctx, &schema.LocalUnit{
		TokenID: 7,
		Owner:   "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		URI:     "ipfs://seven",
		Mint:    "mint-7",
	}))

	err := s.CreateUnit(ctx, &schema.LocalUnit{TokenID: 7})
	assert.ErrorIs(t, err, domain.ErrTokenAlreadyExists)

	unit, err := s.GetUnit(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, unit)
	assert.Equal(t, "ipfs://seven", unit.URI)

	require.NoError(t, s.DeleteUnit(ctx, 7))

	unit, err = s.GetUnit(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, unit)

	err = s.DeleteUnit(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNFTOriginNotFound)
}

func TestWithTxRollback(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	s := NewPGStore(testDB)

	require.NoError(t, s.CreateUnit(ctx, &schema.LocalUnit{
		TokenID: 9,
		Owner:   "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		URI:     "ipfs://nine",
		Mint:    "mint-9",
	}))

	// the burn inside the transaction must be undone when fn fails
	relayFailed := errors.New("relay failed")
	err := s.WithTx(ctx, func(tx Store) error {
		if err := tx.DeleteUnit(ctx, 9); err != nil {
			return err
		}
		return relayFailed
	})
	assert.ErrorIs(t, err, relayFailed)

	unit, err := s.GetUnit(ctx, 9)
	require.NoError(t, err)
	assert.NotNil(t, unit, "burned unit must be restored after rollback")

	// and committed when fn succeeds
	require.NoError(t, s.WithTx(ctx, func(tx Store) error {
		return tx.DeleteUnit(ctx, 9)
	}))

	unit, err = s.GetUnit(ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, unit)
}
