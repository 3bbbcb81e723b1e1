package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/hay-kot/sheet/internal/core/config"
	"github.com/hay-kot/sheet/internal/core/sheet"
)

// NewSheet builds the sheet a command works on. Records come from the
// configured seed file, or the built-in seed when none is set.
func NewSheet(cfg *config.Config, configPath string, logger zerolog.Logger) (*sheet.Sheet, error) {
	codec := sheet.NewCodec(cfg.CSV.Dialect)

	store, err := seedStore(cfg.SeedPath(configPath), codec)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("records", store.Len()).Str("seed", cfg.SeedFile).Msg("sheet seeded")
	return sheet.New(store, codec, logger), nil
}

func seedStore(path string, codec sheet.Codec) (*sheet.Store, error) {
	if path == "" {
		return sheet.NewStore(sheet.SeedRecords()...), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	batch, err := codec.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	store := sheet.NewStore()
	store.AddAll(batch)
	return store, nil
}
