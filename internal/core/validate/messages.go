package validate

import "fmt"

// Locale selects the language of validation messages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

// Locales returns the supported message locales.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleRU}
}

// Messages holds the fixed user-facing text for each failing rule and for the
// submission outcome.
type Messages struct {
	DuplicateHashtags string
	TooManyHashtags   string
	InvalidHashtag    string
	DescriptionLength string

	// Submission outcome toasts.
	Submitted    string
	SubmitFailed string
}

// MessagesFor returns the messages for locale with the limits filled in.
// Unknown locales fall back to English.
func MessagesFor(locale Locale, limits Limits) Messages {
	switch locale {
	case LocaleRU:
		return Messages{
			DuplicateHashtags: "Нельзя один и тот же хештег использовать дважды",
			TooManyHashtags:   fmt.Sprintf("Нельзя использовать больше %d хештегов", limits.MaxHashtags),
			InvalidHashtag: fmt.Sprintf(
				"Хештеги должны начинаться с знака #, разделяться пробелами, содержать только буквы и цифры и содержать хотя бы один символ, но не больше %d символов (включая знак #)",
				MaxHashtagLength,
			),
			DescriptionLength: fmt.Sprintf("Длина комментария не должна превышать %d символов", limits.MaxDescriptionLength),
			Submitted:         "Изображение успешно загружено",
			SubmitFailed:      "Ошибка загрузки файла",
		}
	default:
		return Messages{
			DuplicateHashtags: "the same hashtag cannot be used twice",
			TooManyHashtags:   fmt.Sprintf("no more than %d hashtags allowed", limits.MaxHashtags),
			InvalidHashtag: fmt.Sprintf(
				"hashtags start with #, are separated by spaces, contain only letters and digits and are 2-%d characters long including #",
				MaxHashtagLength,
			),
			DescriptionLength: fmt.Sprintf("description cannot exceed %d characters", limits.MaxDescriptionLength),
			Submitted:         "image uploaded",
			SubmitFailed:      "upload failed, try again",
		}
	}
}
