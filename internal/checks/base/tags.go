package base

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// normalizeTags coerces every tag to a string so the aggregator boundary only
// ever sees string tags.  A tag that fails coercion is dropped with a logged
// warning rather than failing the whole submission.  The input slice is never
// mutated; a fresh slice is always returned, with any configured extra tags
// appended.
func (cb *CheckBase) normalizeTags(tags []interface{}, deviceName string) []string {
	normalized := make([]string, 0, len(tags)+len(cb.extraTags)+1)
	for _, tag := range tags {
		str, ok := coerceTag(tag)
		if !ok {
			cb.log.Warning("Error converting tag to string, ignoring tag")
			continue
		}
		normalized = append(normalized, str)
	}

	if deviceName != "" {
		cb.logDeprecation(deprecationDeviceName)
		normalized = append(normalized, "device:"+deviceName)
	}

	normalized = append(normalized, cb.extraTags...)
	return normalized
}

func coerceTag(tag interface{}) (string, bool) {
	switch t := tag.(type) {
	case nil:
		return "", false
	case string:
		if !utf8.ValidString(t) {
			return "", false
		}
		return t, true
	case []byte:
		if !utf8.Valid(t) {
			return "", false
		}
		return string(t), true
	case fmt.Stringer:
		return safeStringer(t)
	case error:
		return t.Error(), true
	case bool:
		return strconv.FormatBool(t), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), true
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	default:
		return "", false
	}
}

// safeStringer guards against String methods that panic, e.g. on a nil
// receiver hiding behind the interface.
func safeStringer(s fmt.Stringer) (str string, ok bool) {
	defer func() {
		if recover() != nil {
			str = ""
			ok = false
		}
	}()
	return s.String(), true
}
