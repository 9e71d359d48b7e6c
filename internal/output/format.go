package output

import "github.com/crimson-sun/logpie/internal/model"

// FormatRecord returns a copy of the record with its timestamp expressed in
// the local zone when local is true, and in UTC otherwise. The instant is
// unchanged.
func FormatRecord(r model.Record, local bool) model.Record {
	if local {
		r.Timestamp = r.Timestamp.Local()
	} else {
		r.Timestamp = r.Timestamp.UTC()
	}
	return r
}
