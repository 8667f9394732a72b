// SPDX-License-Identifier: MIT

// Package columns holds the shared data structure between extraction and the
// correlation engine: a Set of K ≥ 2 named, parallel, finite numeric columns.
//
// A Set is immutable. Values are copied in on construction and copied out on
// read, so neither the caller nor the engine can alias its storage.
//
// Column selection from typed records is explicit:
//
//	type Reading struct{ Temp, Humidity, Wind, Pressure float64 }
//
//	set, err := columns.FromRecords(readings,
//		columns.Field("temp", func(r Reading) float64 { return r.Temp }),
//		columns.Field("humidity", func(r Reading) float64 { return r.Humidity }),
//	)
//
// Nothing depends on struct field declaration order.
package columns
