package nlp

import (
	"strings"
	"unicode/utf8"
)

// Clean обрезает пробельные символы по краям.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// CleanPtr — то же для необязательного поля; nil остаётся nil.
func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Clean(*s)
	return &v
}

// Length считает символы (code points), а не байты.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// AsSentence обрезает текст и дописывает точку, если он не заканчивается
// на ".", "!" или "?".
func AsSentence(s string) string {
	cleaned := Clean(s)
	if strings.HasSuffix(cleaned, ".") || strings.HasSuffix(cleaned, "!") || strings.HasSuffix(cleaned, "?") {
		return cleaned
	}
	return cleaned + "."
}
