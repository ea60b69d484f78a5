package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"busbook/internal/domain"
)

// Table names.
const (
	TableBuses    = "buses"
	TableSeats    = "seats"
	TableRoutes   = "routes"
	TableOccupied = "occupancy"
	TableIntents  = "intent_to_travel"
	TableAdmins   = "admins"
)

type tableDef struct {
	pk      string
	record  string
	columns []string
	ddl     string
}

// Creation order matters only for readability; no foreign keys are declared.
var tableOrder = []string{TableBuses, TableSeats, TableRoutes, TableOccupied, TableIntents, TableAdmins}

var tables = map[string]tableDef{
	TableBuses: {
		pk:      "bus_id",
		record:  "bus",
		columns: []string{"bus_id", "bus_number", "bus_name", "total_seats"},
		ddl: `
CREATE TABLE IF NOT EXISTS buses (
	bus_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	bus_number VARCHAR(50) NOT NULL,
	bus_name VARCHAR(255) NULL,
	total_seats INT NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`,
	},
	TableSeats: {
		pk:      "bus_id",
		record:  "seat",
		columns: []string{"bus_id", "available_seats"},
		ddl: `
CREATE TABLE IF NOT EXISTS seats (
	bus_id BIGINT NOT NULL PRIMARY KEY,
	available_seats INT NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`,
	},
	TableRoutes: {
		pk:      "route_id",
		record:  "route",
		columns: []string{"route_id", "bus_id", "stop_name", "stop_time"},
		ddl: `
CREATE TABLE IF NOT EXISTS routes (
	route_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	bus_id BIGINT NOT NULL,
	stop_name VARCHAR(255) NOT NULL,
	stop_time VARCHAR(20) NOT NULL,
	KEY idx_routes_bus (bus_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`,
	},
	TableOccupied: {
		pk:      "id",
		record:  "booking",
		columns: []string{"id", "bus_id", "user_name", "created_at"},
		ddl: `
CREATE TABLE IF NOT EXISTS occupancy (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	bus_id BIGINT NOT NULL,
	user_name VARCHAR(255) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_occupancy_bus (bus_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`,
	},
	TableIntents: {
		pk:      "id",
		record:  "intent",
		columns: []string{"id", "student_id", "bus_id", "seat_reserved", "created_at"},
		ddl: `
CREATE TABLE IF NOT EXISTS intent_to_travel (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	student_id VARCHAR(100) NOT NULL,
	bus_id BIGINT NOT NULL,
	seat_reserved BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_intent_bus (bus_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`,
	},
	TableAdmins: {
		pk:      "id",
		record:  "admin",
		columns: []string{"id", "username", "password"},
		ddl: `
CREATE TABLE IF NOT EXISTS admins (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(100) NOT NULL,
	password VARCHAR(255) NOT NULL,
	UNIQUE KEY uniq_admin_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`,
	},
}

func checkTable(table string) error {
	if _, ok := tables[table]; !ok {
		return domain.InternalError{Msg: fmt.Sprintf("unknown table %q", table)}
	}
	return nil
}

func checkColumn(table, column string) error {
	for _, c := range tables[table].columns {
		if c == column {
			return nil
		}
	}
	return domain.InternalError{Msg: fmt.Sprintf("unknown column %s.%s", table, column)}
}

func primaryKey(table string) string {
	return tables[table].pk
}

func recordName(table string) string {
	if def, ok := tables[table]; ok {
		return def.record
	}
	return table
}

// HasTable reports whether table exists in the active schema (DATABASE()).
func HasTable(ctx context.Context, q Conn, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// EnsureSchema creates any missing table. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, q Conn) error {
	for _, table := range tableOrder {
		if HasTable(ctx, q, table) {
			continue
		}
		if _, err := q.ExecContext(ctx, tables[table].ddl); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
		log.Printf("[DB] action=create_table table=%s", table)
	}
	return nil
}
