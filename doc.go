// SPDX-License-Identifier: MIT

// Package corrheat computes pairwise correlation matrices over numeric
// columns and renders them as color-banded terminal heatmaps.
//
// What is inside:
//
//	columns/    : immutable named parallel columns + typed accessor selection
//	rank/       : average-rank transform (tie-averaging)
//	matrix/     : row-major Dense storage, validators, Pearson kernel
//	correlation/: Pearson / Spearman correlation engine
//	heatmap/    : color bands, Sink abstraction, fixed-width grid renderer
//	csvsource/  : delimited-file ingestion into columns
//	report/     : YAML dump of a correlation result
//	pipeline/   : extract → correlate → render in one call
//	cmd/corrheat: command-line front end (cobra + viper)
//
// Data flow:
//
//	csvsource.Table ──► columns.Set ──► correlation.Correlate ──► heatmap.Render
//	                                        │
//	                                        └─ rank.Average (Spearman only)
//
// The header travels explicitly from columns.Set.Names() into heatmap.Render;
// there is no package-level state anywhere in the module.
//
//	go get github.com/katalvlaran/corrheat
package corrheat
