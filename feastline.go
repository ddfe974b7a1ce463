// Package feastline builds a denormalized food-delivery dataset and answers
// a fixed battery of descriptive-statistics questions over it.
//
// Usage:
//
//	import (
//	    "github.com/feastline/feastline/dataset"
//	    "github.com/feastline/feastline/report"
//	)
//
//	table, err := dataset.Build(loc, dataset.OutputFile, logger) // load, join, persist
//	view := report.BindRows(table.Rows)
//	lines := report.Run(view)
//	report.Render(os.Stdout, lines)
//
// The dataset package ingests three sources (CSV orders, JSON users, a
// restaurant catalog embedded in insert-statement text), left-joins them into
// one table keyed by order, and persists it to a single flat file. The report
// package computes ten independent aggregate answers through the generic
// engine package. The engine never touches the filesystem — all computation
// is in-memory over RecordView.
package feastline
