package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Parse разбирает недоверенный снапшот (файл импорта или тело от пира).
// Проверяется только структура: version и exportedAt числовые, instanceId
// строка, три коллекции - массивы. Поэлементная проверка сюда не входит;
// испорченные элементы приводятся к безопасному виду при загрузке в
// хранилище. Ошибки всегда типизированы: *ValidationError для структурных
// проблем, ErrVersionUnsupported для слишком новой версии.
func Parse(raw []byte) (*Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &ValidationError{Reason: "not a JSON object"}
	}

	var version float64
	if err := requireNumber(fields, "version", &version); err != nil {
		return nil, err
	}

	var instanceID string
	rawID, ok := fields["instanceId"]
	if !ok {
		return nil, &ValidationError{Field: "instanceId", Reason: "missing"}
	}
	if err := json.Unmarshal(rawID, &instanceID); err != nil {
		return nil, &ValidationError{Field: "instanceId", Reason: "must be a string"}
	}

	var exportedAt float64
	if err := requireNumber(fields, "exportedAt", &exportedAt); err != nil {
		return nil, err
	}

	for _, name := range []string{"goals", "sessions", "achievements"} {
		if err := requireArray(fields, name); err != nil {
			return nil, err
		}
	}

	if int(version) > SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, supported %d",
			ErrVersionUnsupported, int(version), SchemaVersion)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// Структура верхнего уровня верна, но элементы не декодируются
		// в известные типы.
		return nil, &ValidationError{Reason: err.Error()}
	}

	return &snap, nil
}

// Valid сокращение для мест, где достаточно ответа да/нет.
func Valid(raw []byte) bool {
	_, err := Parse(raw)
	return err == nil
}

func requireNumber(fields map[string]json.RawMessage, name string, dst *float64) error {
	raw, ok := fields[name]
	if !ok {
		return &ValidationError{Field: name, Reason: "missing"}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &ValidationError{Field: name, Reason: "must be a number"}
	}
	return nil
}

func requireArray(fields map[string]json.RawMessage, name string) error {
	raw, ok := fields[name]
	if !ok {
		return &ValidationError{Field: name, Reason: "missing"}
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return &ValidationError{Field: name, Reason: "must be an array"}
	}
	return nil
}
