package app

import (
	"context"
	"fmt"

	"hrms-lite/internal/attendance"
	"hrms-lite/internal/config"
	"hrms-lite/internal/employee"
	"hrms-lite/internal/shared/connection"

	"go.uber.org/zap"
)

// Store is the explicitly constructed handle to the backing database. It is
// opened once at startup, shared by every request, and closed once at shutdown.
type Store struct {
	Employees  employee.Repository
	Attendance attendance.Repository

	closeFn func(ctx context.Context) error
}

func NewStore(employees employee.Repository, records attendance.Repository, closeFn func(ctx context.Context) error) *Store {
	return &Store{Employees: employees, Attendance: records, closeFn: closeFn}
}

// OpenStore connects to the backend selected by cfg.DBDriver and makes sure
// the unique constraints exist before any repository is handed out.
func OpenStore(ctx context.Context, cfg config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		return openMongoStore(ctx, cfg)
	case config.DriverPostgres:
		return openPostgresStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func openPostgresStore(cfg config.Config) (*Store, error) {
	db, err := connection.ConnectGORMWithRetry(connection.PostgresConfig{
		Host:            cfg.DBHost,
		User:            cfg.DBUser,
		Password:        cfg.DBPassword,
		DBName:          cfg.DBName,
		Port:            cfg.DBPort,
		SSLMode:         cfg.DBSSLMode,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&employee.Employee{}, &attendance.Attendance{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	zap.L().Named("store").Info("postgres store ready", zap.String("db", cfg.DBName))
	return NewStore(
		employee.NewRepository(db),
		attendance.NewRepository(db),
		func(context.Context) error { return sqlDB.Close() },
	), nil
}

func openMongoStore(ctx context.Context, cfg config.Config) (*Store, error) {
	client, err := connection.ConnectMongoWithRetry(ctx, cfg.MongoURI, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDatabase)

	employees, err := employee.NewMongoRepository(ctx, db)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create employee indexes: %w", err)
	}
	records, err := attendance.NewMongoRepository(ctx, db)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create attendance indexes: %w", err)
	}

	zap.L().Named("store").Info("mongo store ready", zap.String("db", cfg.MongoDatabase))
	return NewStore(employees, records, client.Disconnect), nil
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}
