package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
)

// Content types accepted by DecodeCreateTask.
const (
	ContentTypeJSON      = "application/json"
	ContentTypeMultipart = "multipart/form-data"
)

// Multipart field names.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldDueDate     = "dueDate"
	fieldImages      = "images"
)

// maxFieldBytes bounds a single multipart text field.
const maxFieldBytes = 64 << 10

// IngestLimits bounds what a task creation body may carry.
type IngestLimits struct {
	// MaxBodyBytes caps the whole request body. Zero means no cap.
	MaxBodyBytes int64
	// MaxImages caps the number of image parts. Zero means no cap.
	MaxImages int
}

// CreateTaskJSON is the structured JSON creation body.
type CreateTaskJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// CreateTaskForm is the multipart creation body.
type CreateTaskForm struct {
	Title       string
	Description string
	DueDate     string
	Images      []FormImage
}

// FormImage is one uploaded image part held in memory.
type FormImage struct {
	ContentType string
	Data        []byte
}

// DataURI encodes the image as data:<mime>;base64,<payload>.
func (f FormImage) DataURI() string {
	return "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// CreateTaskBody is the parsed creation body. Exactly one variant is set.
type CreateTaskBody struct {
	JSON      *CreateTaskJSON
	Multipart *CreateTaskForm
}

// Payload converts whichever variant is set into the canonical payload.
// Images are inlined as data URIs in submission order.
func (b CreateTaskBody) Payload() *task.Payload {
	switch {
	case b.JSON != nil:
		return &task.Payload{
			Title:       b.JSON.Title,
			Description: b.JSON.Description,
			DueDate:     b.JSON.DueDate,
		}
	case b.Multipart != nil:
		p := &task.Payload{
			Title:       b.Multipart.Title,
			Description: b.Multipart.Description,
			DueDate:     b.Multipart.DueDate,
		}
		if len(b.Multipart.Images) > 0 {
			p.Images = make([]string, len(b.Multipart.Images))
			for i, img := range b.Multipart.Images {
				p.Images[i] = img.DataURI()
			}
		}
		return p
	default:
		return nil
	}
}

// DecodeCreateTask parses a task creation request. The variant is chosen
// from the declared Content-Type and only that variant is attempted. Bodies
// larger than limits.MaxBodyBytes yield domain.ErrPayloadTooLarge; a
// declared Content-Length over the cap is rejected before any read.
func DecodeCreateTask(w http.ResponseWriter, r *http.Request, limits IngestLimits) (CreateTaskBody, error) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return CreateTaskBody{}, domain.NewValidationError("content_type",
			fmt.Sprintf("must be %s or %s", ContentTypeJSON, ContentTypeMultipart))
	}

	if limits.MaxBodyBytes > 0 {
		if r.ContentLength > limits.MaxBodyBytes {
			return CreateTaskBody{}, tooLarge(limits.MaxBodyBytes)
		}
		r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBodyBytes)
	}

	switch mediaType {
	case ContentTypeJSON:
		body, err := decodeCreateJSON(r.Body)
		if err != nil {
			return CreateTaskBody{}, limitError(err, limits.MaxBodyBytes)
		}
		return CreateTaskBody{JSON: body}, nil
	case ContentTypeMultipart:
		boundary := params["boundary"]
		if boundary == "" {
			return CreateTaskBody{}, domain.NewValidationError("content_type", "multipart boundary is missing")
		}
		form, err := decodeCreateForm(multipart.NewReader(r.Body, boundary), limits.MaxImages)
		if err != nil {
			return CreateTaskBody{}, limitError(err, limits.MaxBodyBytes)
		}
		return CreateTaskBody{Multipart: form}, nil
	default:
		return CreateTaskBody{}, domain.NewValidationError("content_type",
			fmt.Sprintf("unsupported %q, must be %s or %s", mediaType, ContentTypeJSON, ContentTypeMultipart))
	}
}

func decodeCreateJSON(body io.Reader) (*CreateTaskJSON, error) {
	var req CreateTaskJSON
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, err
		}
		return nil, domain.NewValidationError("body", "invalid JSON")
	}
	return &req, nil
}

func decodeCreateForm(mr *multipart.Reader, maxImages int) (*CreateTaskForm, error) {
	form := &CreateTaskForm{}
	seen := make(map[string]bool, 3)

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return form, nil
		}
		if err != nil {
			return nil, malformedForm(err)
		}

		name := part.FormName()
		switch name {
		case fieldImages:
			// Only file parts are images; a text field sharing the name is ignored.
			if part.FileName() == "" {
				if _, err := io.Copy(io.Discard, part); err != nil {
					return nil, malformedForm(err)
				}
				continue
			}
			img, ok, err := readImagePart(part)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if maxImages > 0 && len(form.Images) >= maxImages {
				return nil, domain.NewValidationError(fieldImages, fmt.Sprintf("at most %d images allowed", maxImages))
			}
			form.Images = append(form.Images, img)
		case fieldTitle, fieldDescription, fieldDueDate:
			value, err := readFieldPart(part)
			if err != nil {
				return nil, err
			}
			// The first occurrence wins, as with Request.FormValue.
			if seen[name] {
				continue
			}
			seen[name] = true
			switch name {
			case fieldTitle:
				form.Title = value
			case fieldDescription:
				form.Description = value
			case fieldDueDate:
				form.DueDate = value
			}
		default:
			if _, err := io.Copy(io.Discard, part); err != nil {
				return nil, malformedForm(err)
			}
		}
	}
}

// readImagePart buffers an image part. Browsers submit an empty file part
// when no file was chosen; those are reported as not ok and skipped.
func readImagePart(part *multipart.Part) (FormImage, bool, error) {
	data, err := io.ReadAll(part)
	if err != nil {
		return FormImage{}, false, malformedForm(err)
	}
	if len(data) == 0 {
		return FormImage{}, false, nil
	}

	contentType := part.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	} else {
		contentType = http.DetectContentType(data)
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			contentType = mediaType
		}
	}

	return FormImage{ContentType: contentType, Data: data}, true, nil
}

func readFieldPart(part *multipart.Part) (string, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxFieldBytes+1))
	if err != nil {
		return "", malformedForm(err)
	}
	if len(data) > maxFieldBytes {
		return "", domain.NewValidationError(part.FormName(), "is too long")
	}
	return string(data), nil
}

// malformedForm keeps body-limit errors intact so the caller can map them
// to 413; anything else is a validation failure.
func malformedForm(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return domain.NewValidationError("body", "invalid multipart form")
}

func limitError(err error, limit int64) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return tooLarge(limit)
	}
	return err
}

func tooLarge(limit int64) error {
	return fmt.Errorf("%w: body exceeds %d bytes", domain.ErrPayloadTooLarge, limit)
}
