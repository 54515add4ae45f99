package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/bulletin-dev/bulletin/internal/errors"
)

const (
	maxBoardNameLen     = 64
	maxPostTitleLen     = 256
	maxThreadContentLen = 10_000
)

type BoardNameValidator struct{}

func (v *BoardNameValidator) Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.InvalidInput("Board name is required")
	}
	if utf8.RuneCountInString(name) > maxBoardNameLen {
		return errors.InvalidInput("Board name is too long")
	}
	return nil
}

type PostTitleValidator struct{}

func (v *PostTitleValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.InvalidInput("Post title is required")
	}
	if utf8.RuneCountInString(title) > maxPostTitleLen {
		return errors.InvalidInput("Post title is too long")
	}
	return nil
}

type ThreadContentValidator struct{}

func (v *ThreadContentValidator) Content(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.InvalidInput("Thread content is required")
	}
	if utf8.RuneCountInString(content) > maxThreadContentLen {
		return errors.InvalidInput("Thread content is too long")
	}
	return nil
}
