package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	DBName   string
}

type Connection struct {
	db *sql.DB
}

func NewConnection(config DatabaseConfig) (*Connection, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		config.User, config.Password, config.Host, config.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	conn := &Connection{db: db}

	if err := conn.ensureConnection(); err != nil {
		db.Close()
		return nil, err
	}

	return conn, nil
}

func (c *Connection) ensureConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}
	return nil
}

func (c *Connection) GetDB() *sql.DB {
	return c.db
}

func (c *Connection) Close() error {
	return c.db.Close()
}
