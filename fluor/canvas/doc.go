// Package canvas provides drawing surfaces for spectrum traces: a PNG figure
// rendered with gonum/plot and a text chart for terminals rendered with
// asciigraph. Both satisfy scene.Canvas and scene.DetuningMarker.
package canvas
