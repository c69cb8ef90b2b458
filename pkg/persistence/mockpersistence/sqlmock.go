// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mockpersistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/dsconf"
	"github.com/Engineering-Research-and-Development/dsp-true-connector-sub004/pkg/persistence"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SQLMockProvider runs the real persistence layer against go-sqlmock with the
// postgres dialect, so tests can script DB failures.
type SQLMockProvider struct {
	DB   *sql.DB
	Mock sqlmock.Sqlmock
	P    persistence.Persistence
}

func NewSQLMockProvider() (mp *SQLMockProvider, err error) {
	mp = &SQLMockProvider{}
	mp.DB, mp.Mock, err = sqlmock.New()
	if err == nil {
		mp.P, err = persistence.NewSQLProvider(context.Background(), mp, &dsconf.SQLDBConfig{
			DSN: "mocked",
		}, persistence.SQLiteDefaults)
	}
	return mp, err
}

func (mp *SQLMockProvider) DBName() string {
	return "sqlmock"
}

func (mp *SQLMockProvider) Open(string) gorm.Dialector {
	return gormPostgres.New(gormPostgres.Config{Conn: mp.DB})
}

func (mp *SQLMockProvider) GetMigrationDriver(*sql.DB) (migratedb.Driver, error) {
	return nil, fmt.Errorf("not supported")
}
