package post

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	. "postshare/pkg/common"
	"postshare/pkg/logger"
)

// PostInput is a create or update body. A nil field was not sent, or was sent
// with a falsy value.
type PostInput struct {
	Title        *string   `json:"title"`
	Message      *string   `json:"message"`
	Creator      *string   `json:"creator"`
	Tags         *[]string `json:"tags"`
	SelectedFile *string   `json:"selectedFile"`
}

type inputKey struct{}

var typeMessages = map[string]string{
	"title":        "Title must be a string",
	"message":      "Message must be a string",
	"creator":      "Creator must be a string",
	"tags":         "Tags must be an array",
	"selectedFile": "Selected file must be a string",
}

const badBody = "Request body must be a valid JSON object"

// ParseInput sanitizes and decodes a body, then checks every present field. A
// field of the wrong JSON type is reported and skipped; all broken rules are
// returned together in Rules order.
func ParseInput(body []byte) (*PostInput, []string) {
	clean, err := SanitizeBody(body)
	if err != nil {
		return nil, []string{badBody}
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(clean, &raw); err != nil {
		return nil, []string{badBody}
	}

	mistyped := make(map[string]bool)
	in := &PostInput{
		Title:        stringField(raw, "title", mistyped),
		Message:      stringField(raw, "message", mistyped),
		Creator:      stringField(raw, "creator", mistyped),
		Tags:         tagsField(raw, mistyped),
		SelectedFile: stringField(raw, "selectedFile", mistyped),
	}
	in.normalize()

	var errs []string
	values := in.values()
	for _, rule := range Rules {
		if mistyped[rule.Field] {
			errs = append(errs, typeMessages[rule.Field])
			continue
		}
		v, ok := values[rule.Field]
		if !ok {
			continue
		}
		if msg, broken := rule.check(v, false); broken {
			errs = append(errs, msg)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return in, nil
}

// stringField decodes one optional string. JSON null counts as absent.
func stringField(raw map[string]json.RawMessage, field string, mistyped map[string]bool) *string {
	data, ok := raw[field]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		mistyped[field] = true
		return nil
	}
	return s
}

func tagsField(raw map[string]json.RawMessage, mistyped map[string]bool) *[]string {
	data, ok := raw["tags"]
	if !ok {
		return nil
	}
	var tags *[]string
	if err := json.Unmarshal(data, &tags); err != nil {
		mistyped["tags"] = true
		return nil
	}
	return tags
}

func (in *PostInput) normalize() {
	for _, field := range []**string{&in.Title, &in.Message, &in.Creator, &in.SelectedFile} {
		if *field == nil {
			continue
		}
		if **field == "" {
			*field = nil
			continue
		}
		cleaned := CleanText(**field)
		*field = &cleaned
	}
	if in.Tags != nil {
		tags := make([]string, 0, len(*in.Tags))
		for _, t := range *in.Tags {
			tags = append(tags, CleanText(t))
		}
		in.Tags = &tags
	}
}

func (in *PostInput) values() map[string]interface{} {
	values := make(map[string]interface{}, 5)
	if in.Title != nil {
		values["title"] = *in.Title
	}
	if in.Message != nil {
		values["message"] = *in.Message
	}
	if in.Creator != nil {
		values["creator"] = *in.Creator
	}
	if in.Tags != nil {
		values["tags"] = *in.Tags
	}
	if in.SelectedFile != nil {
		values["selectedFile"] = *in.SelectedFile
	}
	return values
}

// Missing names the required fields that are absent or empty, in field order.
func (in *PostInput) Missing() []string {
	missing := []string{}
	if isEmpty(in.Title) {
		missing = append(missing, "title")
	}
	if isEmpty(in.Message) {
		missing = append(missing, "message")
	}
	if isEmpty(in.Creator) {
		missing = append(missing, "creator")
	}
	return missing
}

func isEmpty(s *string) bool {
	return s == nil || *s == ""
}

// NewPost builds an unsaved post with an empty tag list when none were sent.
func (in *PostInput) NewPost() *Post {
	p := &Post{Tags: []string{}}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Message != nil {
		p.Message = *in.Message
	}
	if in.Creator != nil {
		p.Creator = *in.Creator
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.SelectedFile != nil {
		p.SelectedFile = *in.SelectedFile
	}
	return p
}

// Patch keeps only the truthy fields: an empty string leaves the stored value alone.
// A sent tag list, even empty, replaces the stored one.
func (in *PostInput) Patch() *Patch {
	p := new(Patch)
	if !isEmpty(in.Title) {
		p.Title = in.Title
	}
	if !isEmpty(in.Message) {
		p.Message = in.Message
	}
	if !isEmpty(in.Creator) {
		p.Creator = in.Creator
	}
	if !isEmpty(in.SelectedFile) {
		p.SelectedFile = in.SelectedFile
	}
	if in.Tags != nil {
		p.Tags = in.Tags
	}
	return p
}

func WithInput(ctx context.Context, in *PostInput) context.Context {
	return context.WithValue(ctx, inputKey{}, in)
}

func InputFromContext(ctx context.Context) (*PostInput, bool) {
	in, ok := ctx.Value(inputKey{}).(*PostInput)
	return in, ok && in != nil
}

// ValidatePost checks create and update bodies before they reach the handler and
// hands the decoded input over through the context. A malformed post_id path
// variable is rejected before the body is read.
func ValidatePost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw, ok := mux.Vars(r)["post_id"]; ok {
			if _, err := ParseId(raw); err != nil {
				WriteErr(w, InvalidId())
				return
			}
		}
		in, errs := readInput(r)
		if len(errs) > 0 {
			logger.Log(r.Context()).Debugf("post/validator: rejected body: %v", errs)
			WriteErr(w, ValidationFailed(errs))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithInput(r.Context(), in)))
	})
}

func readInput(r *http.Request) (*PostInput, []string) {
	if in, ok := InputFromContext(r.Context()); ok {
		return in, nil
	}
	if r.Body == nil {
		return ParseInput(nil)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, []string{"Request body is too large"}
		}
		return nil, []string{"Request body could not be read"}
	}
	return ParseInput(body)
}
