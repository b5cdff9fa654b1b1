package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	schemafiles "github.com/terraincognita07/dailydiet/migrations"
	"gorm.io/gorm"
)

var addColumnPattern = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+(\S+)\s+ADD\s+COLUMN\s+(\S+)`)

// schemaVersion is one row of the schema_migrations bookkeeping table.
type schemaVersion struct {
	Version   string    `gorm:"column:version;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (schemaVersion) TableName() string {
	return "schema_migrations"
}

type schemaStep struct {
	Version    string
	Order      int
	File       string
	Statements []string
}

// migrateSchema brings the database up to the newest embedded schema step.
func migrateSchema(database *gorm.DB) error {
	if err := database.AutoMigrate(&schemaVersion{}); err != nil {
		return fmt.Errorf("prepare schema_migrations: %w", err)
	}

	steps, err := embeddedSchemaSteps()
	if err != nil {
		return err
	}

	var applied []string
	if err := database.Model(&schemaVersion{}).Pluck("version", &applied).Error; err != nil {
		return fmt.Errorf("load applied schema versions: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, version := range applied {
		done[version] = true
	}

	for _, step := range steps {
		if done[step.Version] {
			continue
		}
		if err := database.Transaction(func(tx *gorm.DB) error { return runSchemaStep(tx, step) }); err != nil {
			return err
		}
	}
	return nil
}

func embeddedSchemaSteps() ([]schemaStep, error) {
	files, err := fs.Glob(schemafiles.Files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list schema files: %w", err)
	}

	steps := make([]schemaStep, 0, len(files))
	owners := make(map[string]string, len(files))
	for _, file := range files {
		version, _, found := strings.Cut(file, "_")
		order, convErr := strconv.Atoi(version)
		if !found || convErr != nil {
			continue
		}
		if owner, taken := owners[version]; taken {
			return nil, fmt.Errorf("schema version %s used by both %s and %s", version, owner, file)
		}
		owners[version] = file

		raw, err := fs.ReadFile(schemafiles.Files, file)
		if err != nil {
			return nil, fmt.Errorf("read schema file %s: %w", file, err)
		}
		statements := splitSQLStatements(string(raw))
		if len(statements) == 0 {
			return nil, fmt.Errorf("schema file %s has no statements", file)
		}
		steps = append(steps, schemaStep{Version: version, Order: order, File: file, Statements: statements})
	}

	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
	return steps, nil
}

func runSchemaStep(tx *gorm.DB, step schemaStep) error {
	for _, statement := range step.Statements {
		if columnAlreadyAdded(tx, statement) {
			continue
		}
		if err := tx.Exec(statement).Error; err != nil {
			return fmt.Errorf("schema %s: %q: %w", step.File, statement, err)
		}
	}

	record := schemaVersion{Version: step.Version, Name: step.File, AppliedAt: time.Now().UTC()}
	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("record schema %s: %w", step.File, err)
	}
	return nil
}

// columnAlreadyAdded lets ADD COLUMN steps run against databases that gained
// the column before schema_migrations existed.
func columnAlreadyAdded(tx *gorm.DB, statement string) bool {
	matches := addColumnPattern.FindStringSubmatch(statement)
	if matches == nil {
		return false
	}
	return tx.Migrator().HasColumn(unquoteIdentifier(matches[1]), unquoteIdentifier(matches[2]))
}

func splitSQLStatements(script string) []string {
	var statements []string
	for _, part := range strings.Split(script, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

func unquoteIdentifier(identifier string) string {
	return strings.Trim(identifier, "\"`[]")
}
