package validation

import (
	"errors"
	"strings"
	"testing"
)

func fieldErr(t *testing.T, err error) *Error {
	t.Helper()
	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v (%T), want *validation.Error", err, err)
	}
	if len(ve.Fields) == 0 {
		t.Fatal("validation error carries no field detail")
	}
	return ve
}

func TestDecodeCreateMinimal(t *testing.T) {
	req, err := DecodeCreate(strings.NewReader(`{"title": "Buy milk"}`))
	if err != nil {
		t.Fatalf("DecodeCreate error: %v", err)
	}
	if req.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", req.Title, "Buy milk")
	}
	if req.Description != nil {
		t.Errorf("Description = %v, want nil", *req.Description)
	}
	if req.Priority != nil {
		t.Errorf("Priority = %v, want nil (defaulting is the handler's job)", *req.Priority)
	}
}

func TestDecodeCreateAllFields(t *testing.T) {
	req, err := DecodeCreate(strings.NewReader(`{"title": "A", "description": "d", "priority": 2}`))
	if err != nil {
		t.Fatalf("DecodeCreate error: %v", err)
	}
	if req.Description == nil || *req.Description != "d" {
		t.Errorf("Description = %v, want d", req.Description)
	}
	if req.Priority == nil || *req.Priority != 2 {
		t.Errorf("Priority = %v, want 2", req.Priority)
	}
}

func TestDecodeCreateMissingTitle(t *testing.T) {
	_, err := DecodeCreate(strings.NewReader(`{"description": "d"}`))
	ve := fieldErr(t, err)
	if !strings.Contains(ve.Error(), "title") {
		t.Errorf("error %q does not mention the missing title", ve.Error())
	}
}

func TestDecodeCreateWrongType(t *testing.T) {
	_, err := DecodeCreate(strings.NewReader(`{"title": "A", "priority": "high"}`))
	ve := fieldErr(t, err)
	found := false
	for _, f := range ve.Fields {
		if f.Field == "priority" {
			found = true
		}
	}
	if !found {
		t.Errorf("fields %+v do not name priority", ve.Fields)
	}
}

func TestDecodeCreateTitleNotString(t *testing.T) {
	_, err := DecodeCreate(strings.NewReader(`{"title": 7}`))
	fieldErr(t, err)
}

func TestDecodeCreateUnknownField(t *testing.T) {
	_, err := DecodeCreate(strings.NewReader(`{"title": "A", "completed": true}`))
	fieldErr(t, err)
}

func TestDecodeCreateMalformedJSON(t *testing.T) {
	_, err := DecodeCreate(strings.NewReader(`{"title":`))
	ve := fieldErr(t, err)
	if ve.Fields[0].Field != "body" {
		t.Errorf("malformed JSON reported on field %q, want body", ve.Fields[0].Field)
	}
}

func TestDecodeCreateNullDescription(t *testing.T) {
	req, err := DecodeCreate(strings.NewReader(`{"title": "A", "description": null}`))
	if err != nil {
		t.Fatalf("DecodeCreate error: %v", err)
	}
	if req.Description != nil {
		t.Errorf("Description = %v, want nil", *req.Description)
	}
}

func TestDecodeCreateFloatPriority(t *testing.T) {
	for _, body := range []string{
		`{"title": "A", "priority": 2.0}`,
		`{"title": "A", "priority": 1e99}`,
	} {
		_, err := DecodeCreate(strings.NewReader(body))
		ve := fieldErr(t, err)
		found := false
		for _, f := range ve.Fields {
			if f.Field == "priority" {
				found = true
			}
		}
		if !found {
			t.Errorf("body %s: fields %+v do not name priority", body, ve.Fields)
		}
	}
}

func TestDecodeUpdateEmptyBody(t *testing.T) {
	req, err := DecodeUpdate(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("DecodeUpdate error: %v", err)
	}
	if req.Title != nil || req.Description != nil || req.Priority != nil {
		t.Errorf("empty update decoded to %+v, want all nil", req)
	}
	if req.DescriptionSet {
		t.Error("DescriptionSet = true for a body without a description key")
	}
}

func TestDecodeUpdateNullDescription(t *testing.T) {
	req, err := DecodeUpdate(strings.NewReader(`{"description": null}`))
	if err != nil {
		t.Fatalf("DecodeUpdate error: %v", err)
	}
	if !req.DescriptionSet {
		t.Error("DescriptionSet = false for an explicit null description")
	}
	if req.Description != nil {
		t.Errorf("Description = %q, want nil", *req.Description)
	}
}

func TestDecodeUpdateDescriptionValue(t *testing.T) {
	req, err := DecodeUpdate(strings.NewReader(`{"description": "d"}`))
	if err != nil {
		t.Fatalf("DecodeUpdate error: %v", err)
	}
	if !req.DescriptionSet {
		t.Error("DescriptionSet = false for a present description")
	}
	if req.Description == nil || *req.Description != "d" {
		t.Errorf("Description = %v, want d", req.Description)
	}
}

func TestDecodeUpdateSubset(t *testing.T) {
	req, err := DecodeUpdate(strings.NewReader(`{"priority": 3}`))
	if err != nil {
		t.Fatalf("DecodeUpdate error: %v", err)
	}
	if req.Priority == nil || *req.Priority != 3 {
		t.Errorf("Priority = %v, want 3", req.Priority)
	}
	if req.Title != nil {
		t.Errorf("Title = %v, want nil", *req.Title)
	}
}

func TestDecodeUpdateRejectsCompleted(t *testing.T) {
	_, err := DecodeUpdate(strings.NewReader(`{"completed": true}`))
	fieldErr(t, err)
}
