// Package codec converts between Firestore REST field values and plain Go
// values. Both directions are total: anything the codec does not recognize
// degrades to null with a logged warning instead of failing, so one odd field
// cannot void a whole collection backup.
package codec

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

// timestampPattern matches the subset of ISO-8601 Firestore emits for
// timestamps: 4-digit year, exactly 3 fractional-second digits, literal Z.
// This is a syntactic heuristic: a plain string that happens to match will be
// re-encoded as a timestamp. Documented limitation, inherited from the backup
// file format having no type tags of its own.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

// maxSafeInteger is the largest float64 that still holds integer precision.
const maxSafeInteger float64 = 1 << 53

// Codec converts field values in both directions. It keeps no state between
// calls; the logger is only used for degradation warnings.
type Codec struct {
	logger *slog.Logger
}

// New creates a Codec. A nil logger disables degradation warnings.
func New(logger *slog.Logger) *Codec {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Codec{logger: logger}
}

// Decode converts one wire value to a plain value. Integers decode to int64,
// which holds the full Firestore integer range; precision is only at risk
// once the value passes through a JSON number on the file round trip.
func (c *Codec) Decode(v model.Value) any {
	switch {
	case v.StringValue != nil:
		return *v.StringValue
	case v.IntegerValue != nil:
		n, err := strconv.ParseInt(*v.IntegerValue, 10, 64)
		if err != nil {
			c.logger.Warn("malformed integerValue, decoding as null", "value", *v.IntegerValue)
			return nil
		}
		return n
	case v.DoubleValue != nil:
		return *v.DoubleValue
	case v.BooleanValue != nil:
		return *v.BooleanValue
	case v.TimestampValue != nil:
		return *v.TimestampValue
	case v.NullValue != nil:
		return nil
	case v.ArrayValue != nil:
		items := make([]any, 0, len(v.ArrayValue.Values))
		for _, item := range v.ArrayValue.Values {
			items = append(items, c.Decode(item))
		}
		return items
	case v.MapValue != nil:
		return c.DecodeFields(v.MapValue.Fields)
	default:
		c.logger.Warn("unrecognized field value tag, decoding as null")
		return nil
	}
}

// DecodeFields converts a wire field map to a plain document map.
func (c *Codec) DecodeFields(fields map[string]model.Value) map[string]any {
	out := make(map[string]any, len(fields))
	for name, v := range fields {
		out[name] = c.Decode(v)
	}
	return out
}

// Encode converts one plain value to a wire value. Rules are evaluated in
// precedence order: null, boolean, number (integral numbers become
// integerValue decimal strings, the wire format mandates this), timestamp
// pattern, string, sequence, map. Any other runtime type degrades to null
// with a warning.
func (c *Codec) Encode(v any) model.Value {
	switch val := v.(type) {
	case nil:
		return model.NullValueOf()
	case bool:
		return model.BooleanValueOf(val)
	case int:
		return model.IntegerValueOf(strconv.FormatInt(int64(val), 10))
	case int64:
		return model.IntegerValueOf(strconv.FormatInt(val, 10))
	case float64:
		return c.encodeFloat(val)
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return model.IntegerValueOf(strconv.FormatInt(n, 10))
		}
		if f, err := val.Float64(); err == nil {
			return c.encodeFloat(f)
		}
		c.logger.Warn("unparseable number, encoding as null", "value", val.String())
		return model.NullValueOf()
	case string:
		if timestampPattern.MatchString(val) {
			return model.TimestampValueOf(val)
		}
		return model.StringValueOf(val)
	case []any:
		values := make([]model.Value, 0, len(val))
		for _, item := range val {
			values = append(values, c.Encode(item))
		}
		return model.Value{ArrayValue: &model.ArrayValue{Values: values}}
	case map[string]any:
		return model.Value{MapValue: &model.MapValue{Fields: c.EncodeFields(val)}}
	default:
		c.logger.Warn("unsupported value type, encoding as null", "type", fmt.Sprintf("%T", v))
		return model.NullValueOf()
	}
}

// EncodeFields converts a plain document map to a wire field map.
func (c *Codec) EncodeFields(doc map[string]any) map[string]model.Value {
	out := make(map[string]model.Value, len(doc))
	for name, v := range doc {
		out[name] = c.Encode(v)
	}
	return out
}

// encodeFloat picks integerValue for whole numbers within integer-safe range
// and doubleValue otherwise.
func (c *Codec) encodeFloat(f float64) model.Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) <= maxSafeInteger {
		return model.IntegerValueOf(strconv.FormatInt(int64(f), 10))
	}
	return model.DoubleValueOf(f)
}
