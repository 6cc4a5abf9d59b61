package config

import (
	"fmt"

	"github.com/sasaki-csngrp/myreno/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection from the DB_* environment variables.
func InitDB(log *logger.Logger) (*gorm.DB, error) {
	host := GetEnv("DB_HOST", "localhost")
	port := GetEnv("DB_PORT", "5432")
	user := GetEnv("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD", "")
	name := GetEnv("DB_NAME", "myreno")
	sslmode := GetEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslmode)

	log.Info("connecting to postgres", "host", host, "port", port, "dbname", name)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}
