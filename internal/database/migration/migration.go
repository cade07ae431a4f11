package migration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"gauzy/internal/model"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the first table step; its presence means the schema exists.
const sentinelTable = "public.organization"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_organization",
		SQL: `CREATE TABLE IF NOT EXISTS organization (
  id                      UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  name                    TEXT         NOT NULL,
  image_url               VARCHAR(500),
  currency                TEXT         NOT NULL,
  value_date              TIMESTAMPTZ,
  default_value_date_type TEXT         NOT NULL,
  is_active               BOOLEAN      NOT NULL DEFAULT true,
  default_alignment_type  TEXT,
  time_zone               TEXT,
  brand_color             TEXT,
  date_format             TEXT,
  official_name           TEXT,
  start_week_on           TEXT,
  tax_id                  VARCHAR(256),
  country                 TEXT,
  city                    TEXT,
  address                 TEXT,
  address2                TEXT,
  postcode                TEXT,
  region_code             TEXT,
  number_format           TEXT,
  created_at              TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at              TIMESTAMPTZ  NOT NULL DEFAULT now(),
  deleted_at              TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_organization_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_organization_name ON organization (name);`,
	},
	{
		Name: "create_index_organization_currency",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_organization_currency ON organization (currency);`,
	},
	{
		Name: "create_index_organization_default_value_date_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_organization_default_value_date_type ON organization (default_value_date_type);`,
	},
	{
		Name: "create_table_role",
		SQL: `CREATE TABLE IF NOT EXISTS role (
  id   UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
  name TEXT NOT NULL UNIQUE
);`,
	},
	{
		Name: "seed_roles",
		SQL:  seedRolesSQL(model.RolesEnum),
	},
	{
		Name: "create_table_user",
		SQL: `CREATE TABLE IF NOT EXISTS "user" (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name  TEXT        NOT NULL DEFAULT '',
  last_name   TEXT        NOT NULL DEFAULT '',
  email       TEXT        NOT NULL,
  image_url   VARCHAR(500) NOT NULL DEFAULT '',
  role_id     UUID        REFERENCES role (id),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_user_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_user_email ON "user" (lower(email)) WHERE deleted_at IS NULL;`,
	},
	{
		Name: "create_table_user_organization",
		SQL: `CREATE TABLE IF NOT EXISTS user_organization (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id         UUID        NOT NULL REFERENCES "user" (id),
  organization_id UUID        NOT NULL REFERENCES organization (id),
  is_default      BOOLEAN     NOT NULL DEFAULT false,
  is_active       BOOLEAN     NOT NULL DEFAULT true,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at      TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_user_organization_org",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_user_organization_org ON user_organization (organization_id);`,
	},
	{
		Name: "create_table_employee",
		SQL: `CREATE TABLE IF NOT EXISTS employee (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id         UUID        NOT NULL REFERENCES "user" (id),
  organization_id UUID        NOT NULL REFERENCES organization (id),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at      TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_invite",
		SQL: `CREATE TABLE IF NOT EXISTS invite (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  email           TEXT        NOT NULL,
  organization_id UUID        NOT NULL REFERENCES organization (id),
  role_id         UUID        REFERENCES role (id),
  invited_by_id   UUID        REFERENCES "user" (id),
  invitation_type TEXT        NOT NULL,
  status          TEXT        NOT NULL,
  expire_date     TIMESTAMPTZ NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at      TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_invite_org",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_invite_org ON invite (organization_id);`,
	},
	{
		Name: "create_table_time_off_request",
		SQL: `CREATE TABLE IF NOT EXISTS time_off_request (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  organization_id UUID        NOT NULL REFERENCES organization (id),
  employee_id     UUID        REFERENCES employee (id),
  description     TEXT        NOT NULL DEFAULT '',
  start_date      TIMESTAMPTZ NOT NULL,
  end_date        TIMESTAMPTZ NOT NULL CHECK (end_date >= start_date),
  status          TEXT        NOT NULL,
  is_holiday      BOOLEAN     NOT NULL DEFAULT false,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  deleted_at      TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_time_off_request_window",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_time_off_request_window ON time_off_request (organization_id, start_date, end_date);`,
	},
}

func seedRolesSQL(names []string) string {
	values := make([]string, len(names))
	for i, n := range names {
		values[i] = fmt.Sprintf("('%s')", n)
	}
	return `INSERT INTO role (name) VALUES ` + strings.Join(values, ", ") + ` ON CONFLICT (name) DO NOTHING;`
}

// EnsureMigrated checks if the sentinel table exists and runs every step if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	log.WithField("event", "db_migration_check").Info("starting")

	var exists bool
	query := "SELECT to_regclass('" + sentinelTable + "') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	log.WithField("event", "db_migration_start").Info("in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		stepLog := log.WithField("migration_step", step.Name)
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			stepLog.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		stepLog.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("success")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("success")

	return nil
}
