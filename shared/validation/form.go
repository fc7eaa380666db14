package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/itchan-dev/imageboard/shared/api"
	"github.com/itchan-dev/imageboard/shared/domain"
	internal_errors "github.com/itchan-dev/imageboard/shared/errors"
	"github.com/itchan-dev/imageboard/shared/markup"
)

var (
	validate = newValidator()
	// Fields shown as plain text lose any markup. The result is HTML-escaped,
	// like the rendered subject and comment, so every text field of a post
	// can be inserted into a page as is.
	plainText = bluemonday.StrictPolicy()
)

// ThreadForm is a validated thread creation request with rendered text.
type ThreadForm struct {
	Board     domain.BoardCode
	Alias     *string
	Subject   *string
	Text      *string
	MediaDesc *string
	// Rune counts of the raw input, checked against board limits
	SubjectLen int64
	TextLen    int64
}

// CommentForm is a validated reply creation request with rendered text.
type CommentForm struct {
	Op        domain.CommentId
	Alias     *string
	Text      *string
	MediaDesc *string
	TextLen   int64
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !isBlank(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Board validates a board creation request.
func Board(req api.CreateBoardRequest) (*domain.BoardCreationData, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return &domain.BoardCreationData{
		Code:          req.Code,
		Name:          req.Name,
		Desc:          req.Desc,
		MaxThreads:    req.MaxThreads,
		MaxReplies:    req.MaxReplies,
		MaxImgReplies: req.MaxImgReplies,
		MaxSubLen:     req.MaxSubLen,
		MaxComLen:     req.MaxComLen,
		MaxFileSize:   req.MaxFileSize,
		IsNSFW:        req.IsNSFW,
	}, nil
}

// Thread validates a thread creation request and renders its text.
func Thread(req api.CreateThreadRequest) (*ThreadForm, error) {
	if isBlankPtr(req.Subject) && isBlankPtr(req.Text) {
		return nil, &internal_errors.ValidationError{Field: "sub", Message: "subject or comment is required"}
	}
	if err := check(req); err != nil {
		return nil, err
	}

	form := &ThreadForm{
		Board:     req.Board,
		Alias:     plain(req.Alias),
		MediaDesc: plain(req.MediaDesc),
	}
	if !isBlankPtr(req.Subject) {
		form.Subject = rendered(markup.Subject, *req.Subject)
		form.SubjectLen = runeCount(*req.Subject)
	}
	if !isBlankPtr(req.Text) {
		form.Text = rendered(markup.Comment, *req.Text)
		form.TextLen = runeCount(*req.Text)
	}
	return form, nil
}

// Comment validates a reply creation request and renders its text. hasMedia
// reports whether a media part came with the payload.
func Comment(req api.CreateCommentRequest, hasMedia bool) (*CommentForm, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	if isBlankPtr(req.Text) && !hasMedia {
		return nil, &internal_errors.ValidationError{Field: "com", Message: "comment or media is required"}
	}

	form := &CommentForm{
		Op:        req.Op,
		Alias:     plain(req.Alias),
		MediaDesc: plain(req.MediaDesc),
	}
	if !isBlankPtr(req.Text) {
		form.Text = rendered(markup.Comment, *req.Text)
		form.TextLen = runeCount(*req.Text)
	}
	return form, nil
}

// FileName strips markup from a client supplied file name. The result is
// HTML-escaped.
func FileName(name string) string {
	return plainText.Sanitize(name)
}

// check runs the struct tags and reports the first failing field.
func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	return &internal_errors.ValidationError{Field: fe.Field(), Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "must not be blank"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "min":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isBlankPtr(s *string) bool {
	return s == nil || isBlank(*s)
}

func plain(s *string) *string {
	if isBlankPtr(s) {
		return nil
	}
	v := plainText.Sanitize(*s)
	return &v
}

func rendered(render func(string) string, s string) *string {
	v := render(s)
	return &v
}

func runeCount(s string) int64 {
	return int64(utf8.RuneCountInString(s))
}
