package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Timestamp is a creation instant persisted as an RFC 3339 string.
// Reads also accept native BSON datetimes so documents written by older
// tooling still decode.
type Timestamp time.Time

// Now returns the current UTC instant as a Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UTC())
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*t = Timestamp(parsed)
	return nil
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(time.Time(t).UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bson.TypeString:
		parsed, err := time.Parse(time.RFC3339Nano, rv.StringValue())
		if err != nil {
			return fmt.Errorf("invalid stored timestamp %q: %w", rv.StringValue(), err)
		}
		*t = Timestamp(parsed)
		return nil
	case bson.TypeDateTime:
		*t = Timestamp(rv.Time().UTC())
		return nil
	case bson.TypeNull:
		*t = Timestamp{}
		return nil
	default:
		return fmt.Errorf("cannot decode BSON type %s into a timestamp", bt)
	}
}
