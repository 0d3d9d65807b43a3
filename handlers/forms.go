package handlers

import (
	"strconv"
	"strings"

	"yatube/db"
	"yatube/models"
)

// PostForm carries the user-editable fields of a post. The author is
// always taken from the session, never from the submitted form.
type PostForm struct {
	Text  string `form:"text"`
	Group string `form:"group"` // group id as submitted; empty = no group
}

// Validate returns the resolved group reference plus field-level errors.
func (f *PostForm) Validate() (groupID *uint64, errors map[string]string) {
	errors = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		errors["text"] = "Post text is required"
	}
	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 64)
		var group models.Group
		if err != nil || db.Instance.First(&group, id).Error != nil {
			errors["group"] = "Unknown group"
		} else {
			groupID = &id
		}
	}
	return
}

type CommentForm struct {
	Text string `form:"text"`
}

func (f *CommentForm) Valid() bool {
	return strings.TrimSpace(f.Text) != ""
}
