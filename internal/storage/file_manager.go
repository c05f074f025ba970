package storage

import (
	"os"

	json "github.com/goccy/go-json"

	"arenastreams/internal/models"
	"arenastreams/internal/providers"
	"arenastreams/internal/services"
	"arenastreams/internal/storage/interfaces"
)

// FileManager persists the match directory as a zstd-compressed JSON
// snapshot. Writes go through a temp file and rename so a crash mid-save
// never corrupts the previous snapshot.
type FileManager struct {
	service    services.MatchServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.MatchServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := f.service.Snapshot()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadFromFile restores a snapshot. A missing file is a clean first boot; a
// corrupt file is logged and skipped so the server still comes up.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Corrupt match snapshot %s, starting empty: %s", fileName, err)
		return nil
	}

	var matches []*models.Match
	if err := json.Unmarshal(decompressed, &matches); err != nil {
		f.logger.Warnf(providers.TypeApp, "Unreadable match snapshot %s, starting empty: %s", fileName, err)
		return nil
	}

	f.service.Replace(matches)
	f.logger.Infof(providers.TypeApp, "Restored %d matches from %s", len(matches), fileName)
	return nil
}

func (f *FileManager) Close() {
	f.compressor.Close()
}
