package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"immat-api/models"
)

// MotorcycleStore is the persistence the registration service needs.
type MotorcycleStore interface {
	FindAll(ctx context.Context) ([]models.Motorcycle, error)
	FindByFrameNumber(ctx context.Context, frameNumber string) (*models.Motorcycle, error)
	CreateAll(ctx context.Context, motorcycles []models.Motorcycle) error
	UpdateColumns(ctx context.Context, frameNumber string, updates map[string]interface{}) error
}

type MotorcycleService struct {
	store    MotorcycleStore
	dates    *DateNormalizer
	validate *validator.Validate
}

func NewMotorcycleService(store MotorcycleStore, dates *DateNormalizer) *MotorcycleService {
	validate := validator.New()
	// Report fields by their JSON key.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &MotorcycleService{
		store:    store,
		dates:    dates,
		validate: validate,
	}
}

func (s *MotorcycleService) ListAll(ctx context.Context) ([]models.Motorcycle, error) {
	return s.store.FindAll(ctx)
}

func (s *MotorcycleService) GetByFrameNumber(ctx context.Context, frameNumber string) (*models.Motorcycle, error) {
	return s.store.FindByFrameNumber(ctx, frameNumber)
}

// BulkInsert stores one record (JSON object) or many (JSON array) as a
// single unit and returns how many were stored.
func (s *MotorcycleService) BulkInsert(ctx context.Context, body []byte) (int, error) {
	records, err := decodeRecords(body)
	if err != nil {
		return 0, err
	}

	motorcycles := make([]models.Motorcycle, 0, len(records))
	for i, fields := range records {
		var m models.Motorcycle
		for column, value := range fields {
			// Keys outside the schema are ignored on insert.
			m.SetColumn(column, value)
		}
		m.FrameNumber = strings.TrimSpace(m.FrameNumber)
		m.NormalizeBlanks()

		if err := s.validate.Struct(&m); err != nil {
			return 0, &ValidationError{Message: fmt.Sprintf("record %d: %s", i, describeValidation(err))}
		}
		motorcycles = append(motorcycles, m)
	}

	if err := s.store.CreateAll(ctx, motorcycles); err != nil {
		return 0, err
	}

	motorcyclesInserted.Add(float64(len(motorcycles)))
	return len(motorcycles), nil
}

// UpdateByFrameNumber applies a partial update. Only known mutable columns
// are accepted; date columns go through the two-stage normalizer and empty
// values are stored as NULL. An update with nothing to change still fails
// with ErrNotFound for an unknown frame number.
func (s *MotorcycleService) UpdateByFrameNumber(ctx context.Context, frameNumber string, body []byte) error {
	fields, err := decodeObject(body)
	if err != nil {
		return err
	}

	updates := make(map[string]interface{}, len(fields))
	for column, value := range fields {
		if column == "FrameNumber" {
			if value == nil || *value != frameNumber {
				return &ValidationError{Message: "FrameNumber cannot be changed"}
			}
			continue
		}
		if !models.MutableColumns[column] {
			return fmt.Errorf("%w: %s", ErrUnknownField, column)
		}

		value = models.NullIfBlank(value)
		if value == nil {
			updates[column] = nil
			continue
		}

		if isDateColumn(column) {
			normalized, err := s.dates.Normalize(column, *value)
			if err != nil {
				return err
			}
			updates[column] = normalized
			continue
		}
		if utf8.RuneCountInString(*value) > models.ColumnSizes[column] {
			return &ValidationError{Message: fmt.Sprintf("%s must be at most %d characters", column, models.ColumnSizes[column])}
		}
		updates[column] = *value
	}

	if len(updates) == 0 {
		_, err := s.store.FindByFrameNumber(ctx, frameNumber)
		return err
	}

	if err := s.store.UpdateColumns(ctx, frameNumber, updates); err != nil {
		return err
	}

	motorcyclesUpdated.Inc()
	return nil
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func isDateColumn(column string) bool {
	for _, c := range models.DateColumns {
		if c == column {
			return true
		}
	}
	return false
}

// decodeRecords accepts a non-empty JSON object or a non-empty array of
// objects.
func decodeRecords(body []byte) ([]map[string]*string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNoData
	}

	if trimmed[0] != '[' {
		fields, err := decodeObject(trimmed)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			return nil, ErrNoData
		}
		return []map[string]*string{fields}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &ValidationError{Message: "invalid JSON body"}
	}
	if len(items) == 0 {
		return nil, ErrNoData
	}

	records := make([]map[string]*string, 0, len(items))
	for i, item := range items {
		fields, err := decodeObject(item)
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("record %d: %v", i, err)}
		}
		records = append(records, fields)
	}
	return records, nil
}

// decodeObject reads a single flat JSON object whose values are scalars.
// Numbers and booleans are kept in their textual form; null stays nil.
func decodeObject(body []byte) (map[string]*string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNoData
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var raw map[string]interface{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, &ValidationError{Message: "invalid JSON body: expected an object"}
	}
	if err := decoder.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, &ValidationError{Message: "invalid JSON body: unexpected data after object"}
	}

	fields := make(map[string]*string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			fields[key] = nil
		case string:
			fields[key] = &v
		case json.Number:
			text := v.String()
			fields[key] = &text
		case bool:
			text := fmt.Sprintf("%t", v)
			fields[key] = &text
		default:
			return nil, &ValidationError{Message: fmt.Sprintf("field %s must be a string", key)}
		}
	}
	return fields, nil
}
