package repository

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// jsonb columns are generated as plain strings
func toJsonb(v interface{}) (string, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode jsonb column: %w", err)
	}
	return string(bytes), nil
}

func fromJsonb(s string, v interface{}) error {
	if s == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("failed to decode jsonb column: %w", err)
	}
	return nil
}

//go:generate mockgen -source=source.repository.go -destination=mocks/mock_source.repository.go
//go:generate mockgen -source=document.repository.go -destination=mocks/mock_document.repository.go
//go:generate mockgen -source=outlook.repository.go -destination=mocks/mock_outlook.repository.go
//go:generate mockgen -source=outlook_history.repository.go -destination=mocks/mock_outlook_history.repository.go
//go:generate mockgen -source=synthesizer.repository.go -destination=mocks/mock_synthesizer.repository.go
//go:generate mockgen -source=api_request.repository.go -destination=mocks/mock_api_request.repository.go
