package unb

import (
	"github.com/bwmarrin/snowflake"
)

// Identifier is accepted wherever an operation needs an object
// reference. Valid forms are a snowflake.ID, its decimal string or
// integer representation, and any Identifiable resource from this
// package. Anything else resolves to an *IdentifierError.
type Identifier any

// Identifiable is a value that knows its own snowflake id. Guild, User,
// and Item implement it, so a fetched resource can be passed back
// anywhere an Identifier is expected.
type Identifiable interface {
	SnowflakeID() snowflake.ID
}

// resolveID is the single place identifier forms are narrowed to a raw
// snowflake.
func resolveID(ref Identifier) (snowflake.ID, error) {
	switch v := ref.(type) {
	case snowflake.ID:
		return v, nil
	case Identifiable:
		return v.SnowflakeID(), nil
	case string:
		id, err := snowflake.ParseString(v)
		if err != nil {
			return 0, &IdentifierError{Value: ref, Err: err}
		}
		return id, nil
	case int:
		return snowflake.ParseInt64(int64(v)), nil
	case int64:
		return snowflake.ParseInt64(v), nil
	case uint64:
		return snowflake.ID(v), nil
	}

	return 0, &IdentifierError{Value: ref}
}
