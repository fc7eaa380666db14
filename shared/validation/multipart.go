package validation

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
)

const (
	dataPart  = "data"
	mediaPart = "media"
)

// Upload is a fully buffered media part. FileName is the client's file stem,
// kept for display only: type and extension always come from sniffing Data.
type Upload struct {
	FileName string
	Data     []byte
}

// Multipart is a decoded upload: the structured payload plus optional media.
type Multipart[T any] struct {
	Data  T
	Media *Upload
}

// DecodeRequest limits the request body to maxSize bytes and decodes it as a
// multipart upload.
func DecodeRequest[T any](w http.ResponseWriter, r *http.Request, maxSize int64) (*Multipart[T], error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, &internal_errors.ParseError{Part: "multipart", Err: err}
	}
	return DecodeMultipart[T](mr)
}

// DecodeMultipart walks the parts of a multipart body. The "data" part is a
// JSON payload decoded into T, the "media" part is read whole since sniffing
// needs the complete payload. Parts with other names are skipped.
func DecodeMultipart[T any](mr *multipart.Reader) (*Multipart[T], error) {
	var (
		payload *T
		media   *Upload
	)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &internal_errors.ParseError{Part: "multipart", Err: err}
		}

		switch part.FormName() {
		case dataPart:
			payload, err = decodeData[T](part)
		case mediaPart:
			media, err = readMedia(part)
		}
		part.Close()
		if err != nil {
			return nil, err
		}
	}

	if payload == nil {
		return nil, &internal_errors.MissingDataError{Part: dataPart}
	}
	return &Multipart[T]{Data: *payload, Media: media}, nil
}

func decodeData[T any](part *multipart.Part) (*T, error) {
	raw, err := io.ReadAll(part)
	if err != nil {
		return nil, &internal_errors.ParseError{Part: dataPart, Err: err}
	}
	if !utf8.Valid(raw) {
		return nil, &internal_errors.ParseError{Part: dataPart, Err: errors.New("payload is not valid UTF-8")}
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &internal_errors.ParseError{Part: dataPart, Err: err}
	}
	return &v, nil
}

// readMedia returns nil for an empty part, the same as a missing one.
func readMedia(part *multipart.Part) (*Upload, error) {
	data, err := io.ReadAll(part)
	if err != nil {
		return nil, &internal_errors.ParseError{Part: mediaPart, Err: err}
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &Upload{FileName: fileStem(part.FileName()), Data: data}, nil
}

func fileStem(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
