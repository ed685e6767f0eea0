// Package codec serializes records and the id index to the JSON wire
// format used on the ledger. Decoding is forward-tolerant: unknown
// fields are ignored and missing optional fields get defaults.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/careervault/careervault-server/internal/model"
)

// recordPayload is the on-ledger shape of a record. The record id is
// not part of the payload; it lives in the key.
type recordPayload struct {
	Skills         string `json:"skills"`
	Interests      string `json:"interests"`
	History        string `json:"history"`
	Recommendation string `json:"recommendation"`
	Timestamp      int64  `json:"timestamp"`
	Owner          string `json:"owner"`
	Status         string `json:"status"`
}

// EncodeRecord serializes a record for storage under its per-id key.
func EncodeRecord(record model.Record) ([]byte, error) {
	payload := recordPayload{
		Skills:         record.Skills,
		Interests:      record.Interests,
		History:        record.History,
		Recommendation: record.Recommendation,
		Timestamp:      record.CreatedAt,
		Owner:          record.Owner,
		Status:         string(record.Status),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	return data, nil
}

// DecodeRecord deserializes a per-id ledger value. A missing or
// unrecognized status defaults to pending, matching what readers of the
// ledger have historically done with partially written values.
func DecodeRecord(id string, data []byte) (model.Record, error) {
	var payload recordPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.Record{}, fmt.Errorf("%w: %v", model.ErrDecode, err)
	}

	status := model.Status(payload.Status)
	if !status.Valid() {
		status = model.StatusPending
	}

	return model.Record{
		ID:             id,
		Skills:         payload.Skills,
		Interests:      payload.Interests,
		History:        payload.History,
		Recommendation: payload.Recommendation,
		CreatedAt:      payload.Timestamp,
		Owner:          payload.Owner,
		Status:         status,
	}, nil
}

// EncodeIDs serializes the index value.
func EncodeIDs(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to encode id list: %w", err)
	}
	return data, nil
}

// DecodeIDs deserializes the index value.
func DecodeIDs(data []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDecode, err)
	}
	return ids, nil
}
