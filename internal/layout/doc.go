// Package layout defines LayoutMetrics, the per-node result of a layout pass.
//
// A layout engine writes one LayoutMetrics per node; the commit pipeline compares
// the previous and next values to decide whether geometry, hit-testing or paint
// state must update. Values carry no identity: equality and [LayoutMetrics.Hash]
// cover every field. Types are re-exported through the root layoutmetrics package.
package layout
