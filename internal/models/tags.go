package models

// Tag — тег поста.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagNone — служебный тег-заглушка «без тега» на стороне бэкенда.
// В пользовательских списках он не показывается.
const TagNone = "None"

// VisibleTags отфильтровывает служебный тег из пользовательского списка.
func VisibleTags(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.Name == TagNone {
			continue
		}

		out = append(out, t)
	}

	return out
}

// HasTag — есть ли у поста тег с указанным именем.
func HasTag(tags []Tag, name string) bool {
	for _, t := range tags {
		if t.Name == name {
			return true
		}
	}

	return false
}
