package types

import (
	"NoteManager/pkg/response"
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

const (
	MsgRequired  = "This field is required."
	MsgNull      = "This field may not be null."
	MsgBlank     = "This field may not be blank."
	MsgNotString = "Not a valid string."
)

// noteField 一个可写字段的解码规则
type noteField struct {
	name       string
	required   bool
	allowBlank bool
	maxLength  int
	assign     func(in *NoteInput, v string)
}

var noteSchema = []noteField{
	{
		name:      "title",
		required:  true,
		maxLength: TitleMaxLength,
		assign:    func(in *NoteInput, v string) { in.Title = &v },
	},
	{
		name:       "content",
		allowBlank: true,
		assign:     func(in *NoteInput, v string) { in.Content = &v },
	},
}

// DecodeNote 按 noteSchema 解析请求体. partial 为 true 时(PATCH)不检查必填字段.
// id 与未知字段忽略, 非法 UTF-8 按解析错误处理.
func DecodeNote(body []byte, partial bool) (*NoteInput, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !gjson.ValidBytes(body) {
		return nil, response.NewError(http.StatusBadRequest, "JSON parse error - invalid JSON document")
	}
	if !utf8.Valid(body) {
		return nil, response.NewError(http.StatusBadRequest, "JSON parse error - invalid UTF-8")
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		ve := response.NewValidationError()
		ve.Add("non_field_errors", fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", kindOf(doc)))
		return nil, ve
	}

	// 重复的键以最后一次出现为准
	values := make(map[string]gjson.Result)
	doc.ForEach(func(key, value gjson.Result) bool {
		values[key.String()] = value
		return true
	})

	in := &NoteInput{}
	ve := response.NewValidationError()
	for _, f := range noteSchema {
		v, ok := values[f.name]
		if !ok {
			if f.required && !partial {
				ve.Add(f.name, MsgRequired)
			}
			continue
		}
		s, msg := f.decode(v)
		if msg != "" {
			ve.Add(f.name, msg)
			continue
		}
		f.assign(in, s)
	}
	if ve.HasErrors() {
		return nil, ve
	}
	return in, nil
}

func (f noteField) decode(v gjson.Result) (string, string) {
	var s string
	switch v.Type {
	case gjson.Null:
		return "", MsgNull
	case gjson.String:
		s = v.Str
	case gjson.Number:
		s = v.Raw
	default:
		return "", MsgNotString
	}

	s = strings.TrimSpace(s)
	if s == "" && !f.allowBlank {
		return "", MsgBlank
	}
	if f.maxLength > 0 && utf8.RuneCountInString(s) > f.maxLength {
		return "", fmt.Sprintf("Ensure this field has no more than %d characters.", f.maxLength)
	}
	return s, ""
}

func kindOf(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "list"
	case v.Type == gjson.String:
		return "str"
	case v.Type == gjson.Number:
		return "number"
	case v.Type == gjson.True || v.Type == gjson.False:
		return "bool"
	default:
		return "null"
	}
}
