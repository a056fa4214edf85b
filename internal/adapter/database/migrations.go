package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migration representa uma migração de banco de dados aplicada
type Migration struct {
	ID        uint  `gorm:"primaryKey"`
	Version   int64 `gorm:"uniqueIndex"`
	Name      string
	AppliedAt time.Time
}

// migrationFile descreve um arquivo de migração encontrado no diretório
type migrationFile struct {
	Version int64
	Name    string
	Path    string
}

// MigrationManager aplica migrações SQL em arquivos versionados
// (NNNNNN_nome.sql), registrando as versões já aplicadas.
type MigrationManager struct {
	db        *gorm.DB
	logger    *zap.Logger
	directory string
}

// NewMigrationManager cria um novo gerenciador de migrações
func NewMigrationManager(db *gorm.DB, logger *zap.Logger, directory string) *MigrationManager {
	return &MigrationManager{
		db:        db,
		logger:    logger,
		directory: directory,
	}
}

// Initialize cria a tabela de controle de migrações se não existir
func (m *MigrationManager) Initialize(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&Migration{}); err != nil {
		return fmt.Errorf("falha ao criar tabela de migrações: %w", err)
	}
	return nil
}

// ApplyMigrations aplica todas as migrações pendentes, cada uma em sua
// própria transação.
func (m *MigrationManager) ApplyMigrations(ctx context.Context) error {
	if m.directory == "" {
		return nil
	}
	if _, err := os.Stat(m.directory); os.IsNotExist(err) {
		m.logger.Info("diretório de migrações não existe, nada a aplicar",
			zap.String("dir", m.directory))
		return nil
	}

	if err := m.Initialize(ctx); err != nil {
		return err
	}

	var applied []Migration
	if err := m.db.WithContext(ctx).Order("version").Find(&applied).Error; err != nil {
		return fmt.Errorf("falha ao buscar migrações aplicadas: %w", err)
	}

	appliedVersions := make(map[int64]bool)
	for _, migration := range applied {
		appliedVersions[migration.Version] = true
	}

	files, err := m.findMigrationFiles()
	if err != nil {
		return fmt.Errorf("falha ao listar arquivos de migração: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Version < files[j].Version
	})

	for _, file := range files {
		if appliedVersions[file.Version] {
			continue
		}

		m.logger.Info("aplicando migração",
			zap.Int64("version", file.Version), zap.String("name", file.Name))

		content, err := os.ReadFile(file.Path)
		if err != nil {
			return fmt.Errorf("falha ao ler arquivo de migração: %w", err)
		}

		tx := m.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return fmt.Errorf("falha ao iniciar transação: %w", tx.Error)
		}

		for _, sqlCmd := range splitSQLCommands(string(content)) {
			sqlCmd = strings.TrimSpace(sqlCmd)
			if sqlCmd == "" {
				continue
			}

			if err := tx.Exec(sqlCmd).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("falha ao executar migração %d: %w", file.Version, err)
			}
		}

		if err := tx.Create(&Migration{
			Version:   file.Version,
			Name:      file.Name,
			AppliedAt: time.Now(),
		}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("falha ao registrar migração: %w", err)
		}

		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("falha ao confirmar migração: %w", err)
		}
	}

	return nil
}

// findMigrationFiles lista os arquivos NNNNNN_nome.sql do diretório
func (m *MigrationManager) findMigrationFiles() ([]migrationFile, error) {
	entries, err := os.ReadDir(m.directory)
	if err != nil {
		return nil, err
	}

	var files []migrationFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		parts := strings.SplitN(strings.TrimSuffix(entry.Name(), ".sql"), "_", 2)
		version, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			m.logger.Warn("arquivo de migração com nome inválido, ignorando",
				zap.String("file", entry.Name()))
			continue
		}

		name := ""
		if len(parts) > 1 {
			name = parts[1]
		}

		files = append(files, migrationFile{
			Version: version,
			Name:    name,
			Path:    filepath.Join(m.directory, entry.Name()),
		})
	}

	return files, nil
}

// splitSQLCommands divide o conteúdo do arquivo em comandos individuais
func splitSQLCommands(content string) []string {
	return strings.Split(content, ";")
}
