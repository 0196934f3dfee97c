package api

import (
	"encoding/json"
	"fmt"
	"io"

	"casefile/internal/client/models"
)

// DecodeCaseDraft parses an admin-authored case body. Unknown fields are
// rejected here, at the boundary, so a typo in a draft file fails loudly
// instead of silently dropping data server-side.
func DecodeCaseDraft(r io.Reader) (*models.CaseUpsertRequest, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var draft models.CaseUpsertRequest
	if err := dec.Decode(&draft); err != nil {
		return nil, fmt.Errorf("invalid case draft: %w", err)
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("invalid case draft: title is required")
	}
	return &draft, nil
}
