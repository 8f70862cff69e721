// Package perfchart computes the views of a portfolio performance chart: the
// portfolio value plotted against a benchmark, in a detailed "focus" view
// coupled to an overview "context" view.
//
// The package is pure computation, free of any drawing surface:
//   - Data: a Series of DataPoint is decoded once from a CSV or JSON table
//     (DecodeSeries, DecodeJSONSeries, Load) and never modified afterwards.
//   - Ranges: InitialRanges computes the padded full-extent view state,
//     FocusRanges the view state of a brush selection, PresetRange the selection
//     of a zoom preset (1w, 1m, 3m, 6m, 1y, All).
//   - Interaction: a Chart owns the view states and applies input events
//     (OnBrush, SelectPreset, OnPointerMove, OnPointerLeave).
//   - Geometry: TimeScale and LinearScale map data onto the Layout, and produce
//     axis ticks.
//
// Drawing is left to the renderer package, the dashboard tables to the table
// package.
package perfchart
