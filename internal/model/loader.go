package model

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"io/fs"
	"os"
	"path/filepath"
)

// Source names a model and the artifact it is loaded from.
type Source struct {
	Name string
	Path string
}

// Load reads and validates one artifact. A missing file wraps
// ErrArtifactNotFound; every other failure wraps ErrArtifactLoad.
func Load(path string) (Predictor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, absPath(path))
		}
		return nil, fmt.Errorf("%w: %w", ErrArtifactLoad, err)
	}

	artifact, err := DecodeArtifact(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArtifactLoad, err)
	}

	predictor, err := artifact.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArtifactLoad, err)
	}

	return predictor, nil
}

// LoadRegistry loads every source once, in order. Failures are logged and
// kept on the handle; they never stop the remaining loads.
func LoadRegistry(sources []Source) *Registry {
	handles := make([]*Handle, 0, len(sources))

	for _, src := range sources {
		predictor, err := Load(src.Path)

		switch {
		case err == nil:
			log.Info().Str("model", src.Name).Str("path", src.Path).Msg("model loaded")
			handles = append(handles, NewHandle(src.Name, src.Path, predictor))
		case errors.Is(err, ErrArtifactNotFound):
			log.Error().Err(err).Str("model", src.Name).Str("path", src.Path).
				Msg("model artifact not found, place it next to the server binary or fix MODELS")
			handles = append(handles, NewFailedHandle(src.Name, src.Path, err))
		default:
			log.Error().Err(err).Str("model", src.Name).Str("path", src.Path).Msg("failed to load model")
			handles = append(handles, NewFailedHandle(src.Name, src.Path, err))
		}
	}

	return NewRegistry(handles...)
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
