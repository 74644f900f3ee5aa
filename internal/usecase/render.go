package usecase

import (
	"time"

	"admindash/internal/domain/entity"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

func isoString(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// isoField renders a timestamp or epoch-millis field as an ISO-8601 string,
// or nil when the field is absent or zero.
func isoField(doc *entity.Document, key string) interface{} {
	t, ok := doc.Time(key)
	if !ok {
		return nil
	}
	return isoString(t)
}

func documentsWithKey(docs []*entity.Document, key string) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.Fields(key))
	}
	return out
}
