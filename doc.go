// Package sifprep contains the core components of Sif Prep, a toolkit for preparing labelled
// tabular datasets for machine-learning experiments. This root package defines types which are
// employed throughout the toolkit, as well as in its extension, and is an overview of its key concepts.
package sifprep
